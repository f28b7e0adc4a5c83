package request_models

import "santara/pkg/utils"

type InspoCreateRequest struct {
	Title     string     `json:"title"`
	ImageURL  string     `json:"imageUrl"`
	Credit    string     `json:"credit"`
	SourceURL string     `json:"sourceUrl"`
	Gender    string     `json:"gender"`
	Tags      utils.Tags `json:"tags"`
}

// InspoUpdateRequest is a partial update: nil fields are left untouched,
// an empty string clears an optional field.
type InspoUpdateRequest struct {
	Title     *string     `json:"title"`
	ImageURL  *string     `json:"imageUrl"`
	Credit    *string     `json:"credit"`
	SourceURL *string     `json:"sourceUrl"`
	Gender    *string     `json:"gender"`
	Tags      *utils.Tags `json:"tags"`
}

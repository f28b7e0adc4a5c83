package request_models

import (
	"time"

	"santara/pkg/utils"
)

type ArticleCreateRequest struct {
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	ImageURL    string     `json:"imageUrl"`
	Author      string     `json:"author"`
	URL         string     `json:"url"`
	Tags        utils.Tags `json:"tags"`
	PublishedAt *time.Time `json:"publishedAt"`
}

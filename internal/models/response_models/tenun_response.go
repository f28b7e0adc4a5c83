package response_models

// TenunResponse augments a weaving row with auto-discovered image URLs.
// Name is only set on the /outfits alias.
type TenunResponse struct {
	ID                string            `json:"id"`
	Name              string            `json:"name,omitempty"`
	JenisTenun        string            `json:"jenisTenun"`
	Description       string            `json:"description"`
	ImageURL          *string           `json:"imageUrl"`
	ProvinceID        string            `json:"provinceId"`
	Province          *ProvinceResponse `json:"province,omitempty"`
	TenunImageURL     *string           `json:"tenunImageUrl"`
	PemakaianImageURL *string           `json:"pemakaianImageUrl"`
	CreatedAt         int64             `json:"createdAt"`
}

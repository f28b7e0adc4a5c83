package request_models

// TenunCreateRequest serves both /tenun and its /outfits alias; the alias
// sends the weaving name as "name" instead of "jenisTenun".
type TenunCreateRequest struct {
	JenisTenun   string `json:"jenisTenun"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl"`
	ProvinceName string `json:"provinceName"`
}

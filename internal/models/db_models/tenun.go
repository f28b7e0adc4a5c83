package db_models

import "github.com/google/uuid"

// Tenun is one traditional weaving entry. A province can hold several,
// but (province_id, jenis_tenun) stays unique.
type Tenun struct {
	BaseModel
	JenisTenun  string    `gorm:"uniqueIndex:idx_tenun_province_jenis;not null" json:"jenisTenun"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	ProvinceID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_tenun_province_jenis;not null" json:"provinceId"`

	Province *Province `json:"province,omitempty"`
}

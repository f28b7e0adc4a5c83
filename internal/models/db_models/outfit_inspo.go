package db_models

import "github.com/lib/pq"

// Gender values accepted on OutfitInspo. Anything else is rejected
// before it reaches the store.
const (
	GenderMen    = "MEN"
	GenderWomen  = "WOMEN"
	GenderUnisex = "UNISEX"
)

type OutfitInspo struct {
	BaseModel
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`
	Title     string         `gorm:"not null" json:"title"`
	ImageURL  string         `gorm:"not null" json:"imageUrl"`
	Credit    *string        `json:"credit"`
	SourceURL *string        `json:"sourceUrl"`
	Gender    *string        `json:"gender"`
	Tags      pq.StringArray `gorm:"type:text[]" json:"tags"`
}

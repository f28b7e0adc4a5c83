package db_models

import (
	"time"

	"github.com/lib/pq"
)

type Article struct {
	BaseModel
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Title       string         `gorm:"not null" json:"title"`
	Summary     *string        `gorm:"type:text" json:"summary"`
	Content     *string        `gorm:"type:text" json:"content"`
	ImageURL    *string        `json:"imageUrl"`
	Author      *string        `json:"author"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	URL         *string        `json:"url"`
	PublishedAt *time.Time     `json:"publishedAt"`
}

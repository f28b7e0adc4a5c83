package db_models

type Province struct {
	BaseModel
	Name  string   `gorm:"uniqueIndex;not null" json:"name"`
	Tenun []*Tenun `gorm:"foreignKey:ProvinceID" json:"-"` // Explicit foreign key
}

package repositories

import (
	"context"

	"gorm.io/gorm"

	"santara/internal/models/db_models"
)

type TenunRepository interface {
	List(ctx context.Context, provinceName string) ([]db_models.Tenun, error)
	Create(ctx context.Context, tenun *db_models.Tenun) error
	DeleteAll(ctx context.Context) (int64, error)
}

type tenunRepository struct {
	db *gorm.DB
}

func NewTenunRepository(db *gorm.DB) TenunRepository {
	return &tenunRepository{db: db}
}

// List returns weaving rows with their province preloaded, sorted by
// province name then weaving name. provinceName filters when non-empty.
func (r *tenunRepository) List(ctx context.Context, provinceName string) ([]db_models.Tenun, error) {
	var items []db_models.Tenun
	query := r.db.WithContext(ctx).
		Joins("Province").
		Order(`"Province"."name" asc, "tenuns"."jenis_tenun" asc`)

	if provinceName != "" {
		query = query.Where(`"Province"."name" = ?`, provinceName)
	}

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *tenunRepository) Create(ctx context.Context, tenun *db_models.Tenun) error {
	return r.db.WithContext(ctx).Create(tenun).Error
}

func (r *tenunRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&db_models.Tenun{})
	return res.RowsAffected, res.Error
}

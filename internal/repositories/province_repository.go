package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"santara/internal/models/db_models"
)

type ProvinceRepository interface {
	ListAll(ctx context.Context) ([]db_models.Province, error)
	GetByName(ctx context.Context, name string) (*db_models.Province, error)
	Create(ctx context.Context, province *db_models.Province) error
	EnsureByName(ctx context.Context, name string) (*db_models.Province, error)
	PruneExcept(ctx context.Context, names []string) (int64, error)
}

type provinceRepository struct {
	db *gorm.DB
}

func NewProvinceRepository(db *gorm.DB) ProvinceRepository {
	return &provinceRepository{db: db}
}

func (p *provinceRepository) ListAll(ctx context.Context) ([]db_models.Province, error) {
	var provinces []db_models.Province
	err := p.db.WithContext(ctx).Order("name asc").Find(&provinces).Error
	if err != nil {
		return nil, err
	}
	return provinces, nil
}

func (p *provinceRepository) GetByName(ctx context.Context, name string) (*db_models.Province, error) {
	var province db_models.Province
	err := p.db.WithContext(ctx).Where("name = ?", name).First(&province).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &province, nil
}

func (p *provinceRepository) Create(ctx context.Context, province *db_models.Province) error {
	return p.db.WithContext(ctx).Create(province).Error
}

// EnsureByName is the create-if-absent half of the seeding pipeline.
func (p *provinceRepository) EnsureByName(ctx context.Context, name string) (*db_models.Province, error) {
	var province db_models.Province
	err := p.db.WithContext(ctx).
		Where(db_models.Province{Name: name}).
		FirstOrCreate(&province).Error
	if err != nil {
		return nil, err
	}
	return &province, nil
}

// PruneExcept deletes every province whose name is not in names. Called
// by replace-all seeding after the tenun table has been emptied.
func (p *provinceRepository) PruneExcept(ctx context.Context, names []string) (int64, error) {
	db := p.db.WithContext(ctx)
	if len(names) == 0 {
		res := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&db_models.Province{})
		return res.RowsAffected, res.Error
	}
	res := db.Where("name NOT IN ?", names).Delete(&db_models.Province{})
	return res.RowsAffected, res.Error
}

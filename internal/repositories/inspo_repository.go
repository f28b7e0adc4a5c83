package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"santara/internal/models/db_models"
)

// InspoQuery carries the list filters. Limit <= 0 means no limit.
type InspoQuery struct {
	Q      string
	Gender string
	Limit  int
	Offset int
	Asc    bool
}

type InspoRepository interface {
	List(ctx context.Context, q InspoQuery) ([]db_models.OutfitInspo, error)
	Count(ctx context.Context) (int64, error)
	Window(ctx context.Context, limit, offset int) ([]db_models.OutfitInspo, error)
	GetBySlug(ctx context.Context, slug string) (*db_models.OutfitInspo, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, inspo *db_models.OutfitInspo) error
	Save(ctx context.Context, inspo *db_models.OutfitInspo) error
	DeleteBySlug(ctx context.Context, slug string) (int64, error)
}

type inspoRepository struct {
	db *gorm.DB
}

func NewInspoRepository(db *gorm.DB) InspoRepository {
	return &inspoRepository{db: db}
}

func (r *inspoRepository) List(ctx context.Context, q InspoQuery) ([]db_models.OutfitInspo, error) {
	query := r.db.WithContext(ctx).Model(&db_models.OutfitInspo{})

	if q.Q != "" {
		term := "%" + q.Q + "%"
		// The search term doubles as a tag list: "batik,songket" matches
		// rows carrying either tag.
		tags := make([]string, 0)
		for _, t := range strings.Split(q.Q, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
		query = query.Where(
			"title ILIKE ? OR credit ILIKE ? OR tags && ?",
			term, term, pq.Array(tags),
		)
	}
	if q.Gender != "" {
		query = query.Where("gender = ?", q.Gender)
	}

	order := "created_at desc"
	if q.Asc {
		order = "created_at asc"
	}
	query = query.Order(order)

	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	if q.Offset > 0 {
		query = query.Offset(q.Offset)
	}

	var items []db_models.OutfitInspo
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inspoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.OutfitInspo{}).Count(&count).Error
	return count, err
}

// Window returns a contiguous id-ordered slice, used by the random endpoint.
func (r *inspoRepository) Window(ctx context.Context, limit, offset int) ([]db_models.OutfitInspo, error) {
	var items []db_models.OutfitInspo
	err := r.db.WithContext(ctx).
		Order("id asc").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inspoRepository) GetBySlug(ctx context.Context, slug string) (*db_models.OutfitInspo, error) {
	var inspo db_models.OutfitInspo
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&inspo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inspo, nil
}

func (r *inspoRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.OutfitInspo{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

func (r *inspoRepository) Create(ctx context.Context, inspo *db_models.OutfitInspo) error {
	return r.db.WithContext(ctx).Create(inspo).Error
}

func (r *inspoRepository) Save(ctx context.Context, inspo *db_models.OutfitInspo) error {
	return r.db.WithContext(ctx).Save(inspo).Error
}

func (r *inspoRepository) DeleteBySlug(ctx context.Context, slug string) (int64, error) {
	res := r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&db_models.OutfitInspo{})
	return res.RowsAffected, res.Error
}

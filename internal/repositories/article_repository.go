package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"santara/internal/models/db_models"
)

// ArticleQuery carries the list filters. Limit <= 0 means no limit.
type ArticleQuery struct {
	Q      string
	Tag    string
	Limit  int
	Offset int
	Asc    bool
}

type ArticleRepository interface {
	List(ctx context.Context, q ArticleQuery) ([]db_models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*db_models.Article, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, article *db_models.Article) error
	Save(ctx context.Context, article *db_models.Article) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) List(ctx context.Context, q ArticleQuery) ([]db_models.Article, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Article{})

	if q.Q != "" {
		term := "%" + q.Q + "%"
		query = query.Where("title ILIKE ? OR summary ILIKE ?", term, term)
	}
	if q.Tag != "" {
		query = query.Where("? = ANY(tags)", q.Tag)
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

	var articles []db_models.Article
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) GetBySlug(ctx context.Context, slug string) (*db_models.Article, error) {
	var article db_models.Article
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Article{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

func (r *articleRepository) Create(ctx context.Context, article *db_models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) Save(ctx context.Context, article *db_models.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

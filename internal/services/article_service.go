package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"santara/internal/models/db_models"
	"santara/internal/models/request_models"
	"santara/internal/repositories"
	"santara/pkg/utils"
)

type ArticleServiceInterface interface {
	ListArticles(ctx context.Context, q repositories.ArticleQuery) ([]db_models.Article, error)
	GetArticle(ctx context.Context, slug string) (*db_models.Article, error)
	CreateArticle(ctx context.Context, req request_models.ArticleCreateRequest) (*db_models.Article, error)
}

type ArticleService struct {
	articleRepository repositories.ArticleRepository
}

func NewArticleService(articleRepository repositories.ArticleRepository) ArticleServiceInterface {
	return &ArticleService{
		articleRepository: articleRepository,
	}
}

func (a *ArticleService) ListArticles(ctx context.Context, q repositories.ArticleQuery) ([]db_models.Article, error) {
	articles, err := a.articleRepository.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if articles == nil {
		articles = []db_models.Article{}
	}
	return articles, nil
}

func (a *ArticleService) GetArticle(ctx context.Context, slug string) (*db_models.Article, error) {
	article, err := a.articleRepository.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if article == nil {
		return nil, utils.ErrNotFound
	}
	return article, nil
}

func (a *ArticleService) CreateArticle(ctx context.Context, req request_models.ArticleCreateRequest) (*db_models.Article, error) {
	title := strings.TrimSpace(req.Title)

	slug, err := ensureUniqueSlug(ctx, a.articleRepository.SlugExists, title)
	if err != nil {
		return nil, err
	}

	article := &db_models.Article{
		Slug:        slug,
		Title:       title,
		Summary:     optional(req.Summary),
		Content:     optional(req.Content),
		ImageURL:    optional(req.ImageURL),
		Author:      optional(req.Author),
		Tags:        toStringArray(req.Tags),
		URL:         optional(req.URL),
		PublishedAt: req.PublishedAt,
	}

	if err := a.articleRepository.Create(ctx, article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the check-then-create race; the unique index backstops.
			return nil, utils.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return article, nil
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}

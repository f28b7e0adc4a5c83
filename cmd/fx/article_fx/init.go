package article_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"santara/internal/repositories"
	"santara/internal/services"
)

var Module = fx.Provide(
	NewArticleService, NewArticleRepo)

func NewArticleService(repo repositories.ArticleRepository) services.ArticleServiceInterface {
	return services.NewArticleService(repo)
}

func NewArticleRepo(db *gorm.DB) repositories.ArticleRepository {
	return repositories.NewArticleRepository(db)
}

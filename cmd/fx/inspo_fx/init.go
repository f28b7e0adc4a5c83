package inspo_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"santara/internal/repositories"
	"santara/internal/services"
)

var Module = fx.Provide(
	NewInspoService, NewInspoRepo)

func NewInspoService(repo repositories.InspoRepository) services.InspoServiceInterface {
	return services.NewInspoService(repo)
}

func NewInspoRepo(db *gorm.DB) repositories.InspoRepository {
	return repositories.NewInspoRepository(db)
}

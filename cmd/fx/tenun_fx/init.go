package tenun_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"santara/internal/repositories"
	"santara/internal/services"
	"santara/pkg/utils"
)

var Module = fx.Provide(
	NewTenunService, NewTenunRepo, NewImageResolver)

func NewTenunService(
	repo repositories.TenunRepository,
	provinceRepo repositories.ProvinceRepository,
	images *services.ImageResolver,
) services.TenunServiceInterface {
	return services.NewTenunService(repo, provinceRepo, images)
}

func NewTenunRepo(db *gorm.DB) repositories.TenunRepository {
	return repositories.NewTenunRepository(db)
}

func NewImageResolver(cfg utils.Config) *services.ImageResolver {
	return services.NewImageResolver(cfg.PublicDir)
}

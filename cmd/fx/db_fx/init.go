package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"santara/internal/infra"
	"santara/pkg/utils"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg utils.Config) *gorm.DB {
	db := infra.InitPostgresql(cfg.PostgresURL)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db
}

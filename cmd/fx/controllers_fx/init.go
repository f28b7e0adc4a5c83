package controllers_fx

import (
	"go.uber.org/fx"

	"santara/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewProvincesController),
	fx.Provide(controllers.NewTenunController),
	fx.Provide(controllers.NewInspoController),
	fx.Provide(controllers.NewArticlesController))

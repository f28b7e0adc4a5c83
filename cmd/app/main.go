package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"santara/cmd/fx/article_fx"
	"santara/cmd/fx/controllers_fx"
	"santara/cmd/fx/db_fx"
	"santara/cmd/fx/inspo_fx"
	"santara/cmd/fx/province_fx"
	"santara/cmd/fx/tenun_fx"
	"santara/internal/api/controllers"
	"santara/pkg/middleware"
	"santara/pkg/utils"
)

func main() {
	app := fx.New(
		fx.Provide(utils.LoadConfig),
		db_fx.Module,
		province_fx.Module,
		tenun_fx.Module,
		article_fx.Module,
		inspo_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg utils.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg utils.Config,
	provincesController *controllers.ProvincesController,
	tenunController *controllers.TenunController,
	inspoController *controllers.InspoController,
	articlesController *controllers.ArticlesController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	r.Static("/public", cfg.PublicDir)
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World, Outfit Santara API!")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	RegisterRoutes(r, provincesController, tenunController, inspoController, articlesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	provincesController *controllers.ProvincesController,
	tenunController *controllers.TenunController,
	inspoController *controllers.InspoController,
	articlesController *controllers.ArticlesController) {

	api := r.Group("/api")

	api.GET("/provinces", provincesController.GetAllProvinces)
	api.POST("/provinces", provincesController.CreateProvince)

	api.GET("/tenun", tenunController.GetAllTenun)
	api.POST("/tenun", tenunController.CreateTenun)
	api.GET("/outfits", tenunController.GetAllOutfits)
	api.POST("/outfits", tenunController.CreateOutfit)

	api.GET("/inspo", inspoController.ListInspo)
	api.GET("/inspo/random", inspoController.RandomInspo)
	api.GET("/inspo/:slug", inspoController.GetInspo)
	api.POST("/inspo", inspoController.CreateInspo)
	api.PUT("/inspo/:slug", inspoController.UpdateInspo)
	api.DELETE("/inspo/:slug", inspoController.DeleteInspo)

	api.GET("/articles", articlesController.ListArticles)
	api.GET("/articles/:slug", articlesController.GetArticle)
	api.POST("/articles", articlesController.CreateArticle)
}

package cmd

import (
	"context"
	"log/slog"

	"ecommerce-api/config"
	"ecommerce-api/handlers"
	"ecommerce-api/helper"
	"ecommerce-api/repositories"
	"ecommerce-api/routes"
	"ecommerce-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// newRouter builds repositories, services and handlers on top of db.
func newRouter(cfg *config.Config, logger *slog.Logger, db *gorm.DB) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	v := config.NewValidator()
	v.UseWithGin()
	httpHelper := &helper.HTTPHelper{Translator: v.Translator()}

	// Initialize repositories
	productRepo := repositories.NewProductRepository(db)
	productTagRepo := repositories.NewProductTagRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	transactor := repositories.NewTransactor(db)

	// Initialize services
	productService := services.NewProductService(productRepo, productTagRepo, tagRepo, categoryRepo, transactor)
	tagService := services.NewTagService(tagRepo)
	categoryService := services.NewCategoryService(categoryRepo)

	// Initialize handlers
	h := routes.Handlers{
		Product:  handlers.NewProductHandler(productService, httpHelper, logger),
		Category: handlers.NewCategoryHandler(categoryService, httpHelper, logger),
		Tag:      handlers.NewTagHandler(tagService, httpHelper, logger),
	}

	opts := routes.Options{
		Logger:         logger,
		Helper:         httpHelper,
		AllowedOrigins: cfg.AllowedOrigins(),
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if cfg.AuthEnabled() {
		opts.AuthSecret = []byte(cfg.JWTSecret)
	}

	return routes.NewRouter(h, opts)
}

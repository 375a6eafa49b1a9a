package routes

import (
	"context"
	"log/slog"
	"net/http"

	"ecommerce-api/handlers"
	"ecommerce-api/helper"
	"ecommerce-api/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Product  *handlers.ProductHandler
	Category *handlers.CategoryHandler
	Tag      *handlers.TagHandler
}

type Options struct {
	Logger         *slog.Logger
	Helper         *helper.HTTPHelper
	AllowedOrigins []string
	// AuthSecret, when set, guards the product write routes.
	AuthSecret []byte
	// Ping backs GET /health.
	Ping func(ctx context.Context) error
}

func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(middleware.CORS(opts.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		if opts.Ping != nil {
			if err := opts.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "db": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := router.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", h.Product.GetProducts)
			products.GET("/:id", h.Product.GetProduct)

			writes := products.Group("")
			if len(opts.AuthSecret) > 0 {
				writes.Use(middleware.AuthMiddleware(opts.AuthSecret, opts.Helper))
			}
			writes.POST("", h.Product.CreateProduct)
			writes.PUT("/:id", h.Product.UpdateProduct)
			writes.DELETE("/:id", h.Product.DeleteProduct)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", h.Category.GetCategories)
			categories.GET("/:id", h.Category.GetCategory)
		}

		tags := api.Group("/tags")
		{
			tags.GET("", h.Tag.GetTags)
			tags.GET("/:id", h.Tag.GetTag)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		opts.Helper.SendNotFoundError(c, "Wrong route!")
	})

	return router
}

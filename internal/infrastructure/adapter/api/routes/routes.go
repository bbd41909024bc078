package routes

import (
	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every handler the router serves
type Handlers struct {
	ProductLocks  *handler.EditLockHandler
	CategoryLocks *handler.EditLockHandler
	Products      *handler.ProductHandler
	Categories    *handler.CategoryHandler
	Vouchers      *handler.VoucherHandler
	Comments      *handler.CommentHandler
	Health        *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Health)

	api := router.Group("/", middleware.Authenticate())

	products := api.Group("/products")
	{
		products.POST("", h.Products.Create)
		products.GET("", h.Products.List)
		products.POST("/release-my-locks", h.ProductLocks.ReleaseMine)
		products.GET("/:id", h.Products.Get)
		products.PUT("/:id", h.Products.Update)
		products.PATCH("/:id", h.Products.Update)
		products.DELETE("/:id", h.Products.Delete)
		products.POST("/:id/editable/me", h.ProductLocks.Acquire)
		products.POST("/:id/editable/release", h.ProductLocks.Release)
		products.GET("/:id/editable/maintain", h.ProductLocks.Status)
		products.POST("/:id/claim_voucher", h.Vouchers.Claim)
	}

	categories := api.Group("/categories")
	{
		categories.POST("", h.Categories.Create)
		categories.GET("", h.Categories.List)
		categories.POST("/release-my-locks", h.CategoryLocks.ReleaseMine)
		categories.GET("/:id", h.Categories.Get)
		categories.PUT("/:id", h.Categories.Update)
		categories.PATCH("/:id", h.Categories.Update)
		categories.DELETE("/:id", h.Categories.Delete)
		categories.POST("/:id/editable/me", h.CategoryLocks.Acquire)
		categories.POST("/:id/editable/release", h.CategoryLocks.Release)
		categories.GET("/:id/editable/maintain", h.CategoryLocks.Status)
	}

	comments := api.Group("/comments")
	{
		comments.POST("", h.Comments.Create)
		comments.GET("", h.Comments.List)
		comments.GET("/:id", h.Comments.Get)
		comments.PUT("/:id", h.Comments.Update)
		comments.PATCH("/:id", h.Comments.Update)
		comments.DELETE("/:id", h.Comments.Delete)
	}

	api.GET("/vouchers", h.Vouchers.ListMine)
	api.GET("/vouchers/:id", h.Vouchers.Get)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins...))
}

package routes

import (
	"github.com/gin-gonic/gin"
	coreport "github.com/jdvillegas/billing-processor/internal/domain/port/core"
	"github.com/jdvillegas/billing-processor/internal/infrastructure/adapter/api/handler"
	"github.com/jdvillegas/billing-processor/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	customerHandler *handler.CustomerHandler,
	importHandler *handler.ImportHandler,
	healthHandler *handler.HealthHandler,
) {
	// Customer CRUD plus the legacy bulk upload
	customerRoutes := router.Group("/clientes")
	{
		customerRoutes.GET("", customerHandler.List)
		customerRoutes.POST("", customerHandler.Create)
		customerRoutes.PATCH("/:id", customerHandler.Update)
		customerRoutes.DELETE("/:id", customerHandler.Delete)
		customerRoutes.POST("/upload", importHandler.UploadCustomers)
	}

	// Multi-entity import and normalize-only export
	billingRoutes := router.Group("/facturacion")
	{
		billingRoutes.POST("/upload", importHandler.UploadBilling)
		billingRoutes.POST("/normalize", importHandler.Normalize)
	}

	router.GET("/health", healthHandler.Check)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}

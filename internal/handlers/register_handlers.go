package handlers

import (
	"github.com/SscSPs/receipt_processor/cmd/docs"
	portssvc "github.com/SscSPs/receipt_processor/internal/core/ports/services"
	"github.com/SscSPs/receipt_processor/internal/middleware"
	"github.com/SscSPs/receipt_processor/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", getHealth(services.Receipt))

	RegisterReceiptRoutes(&r.RouterGroup, services.Receipt)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

package http

import (
	"github.com/gin-gonic/gin"
	"github.com/pantrychef/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		units := v1.Group("/units")
		{
			units.POST("/validate", handler.ValidateUnit)
			units.POST("/validate/batch", handler.ValidateBatch)
			units.POST("/convert", handler.ConvertUnit)
		}

		foods := v1.Group("/foods")
		{
			foods.GET("/suggestions", handler.GetSuggestions)
		}

		v1.GET("/categories", handler.ListCategories)

		refdata := v1.Group("/refdata")
		{
			refdata.POST("/refresh", handler.RefreshReferenceData)
		}
	}

	return router
}

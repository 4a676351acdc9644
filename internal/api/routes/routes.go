// Package routes wires the middleware chain and endpoint handlers.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/superapp/advisor-service/internal/api/handlers"
	"github.com/superapp/advisor-service/internal/api/middleware"
	"github.com/superapp/advisor-service/internal/domain/services/advisory"
	"github.com/superapp/advisor-service/internal/infrastructure/cache"
	"github.com/superapp/advisor-service/internal/infrastructure/config"
	"github.com/superapp/advisor-service/pkg/logger"
)

// SetupRoutes configures all application routes.
func SetupRoutes(cfg *config.Config, advisoryService *advisory.Service, cacheClient cache.RedisClient, log *logger.Logger) *gin.Engine {
	router := gin.New()

	// Order matters: request ID before logging, recovery before handlers.
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestSizeLimit())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(middleware.RateLimit(cfg.Server.RateLimitPerMin))
	router.Use(middleware.SecurityHeaders())

	healthHandlers := handlers.NewHealthHandlers(cacheClient)
	advisoryHandlers := handlers.NewAdvisoryHandlers(advisoryService, log)

	router.GET("/", healthHandlers.Root)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	ai := router.Group("/api/ai")
	{
		ai.GET("/health", healthHandlers.Health)
		ai.POST("/recommendations", advisoryHandlers.GetRecommendations)
		ai.POST("/insights", advisoryHandlers.GetInsights)
		ai.POST("/profile-analysis", advisoryHandlers.AnalyzeProfile)
		ai.GET("/trending-assets", advisoryHandlers.GetTrendingAssets)
		ai.GET("/market-sentiment", advisoryHandlers.GetMarketSentiment)
	}

	return router
}

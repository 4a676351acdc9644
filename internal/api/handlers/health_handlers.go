package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/superapp/advisor-service/internal/infrastructure/cache"
)

const serviceVersion = "1.0.0"

// HealthHandlers serves liveness and component health endpoints.
type HealthHandlers struct {
	cache cache.RedisClient
}

func NewHealthHandlers(cacheClient cache.RedisClient) *HealthHandlers {
	return &HealthHandlers{cache: cacheClient}
}

// Root is a minimal liveness summary.
// GET /
func (h *HealthHandlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":   "AI Recommendation Service",
		"status":    "healthy",
		"version":   serviceVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Health reports per-component health.
// GET /api/ai/health
func (h *HealthHandlers) Health(c *gin.Context) {
	cacheStatus := "disabled"
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.cache.Ping(ctx); err != nil {
			cacheStatus = "unavailable"
		} else {
			cacheStatus = "operational"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"services": gin.H{
			"recommendation_engine": "operational",
			"profile_analyzer":      "operational",
			"insight_generator":     "operational",
			"cache":                 cacheStatus,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

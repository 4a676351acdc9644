package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/superapp/advisor-service/internal/domain/services/advisory"
	"github.com/superapp/advisor-service/pkg/logger"
)

// AdvisoryHandlers serves the recommendation, insight and profile-analysis
// endpoints.
type AdvisoryHandlers struct {
	advisoryService *advisory.Service
	logger          *logger.Logger
}

func NewAdvisoryHandlers(advisoryService *advisory.Service, logger *logger.Logger) *AdvisoryHandlers {
	return &AdvisoryHandlers{advisoryService: advisoryService, logger: logger}
}

// RecommendationRequest is the body of POST /api/ai/recommendations.
type RecommendationRequest struct {
	CustomerID string   `json:"customer_id" binding:"required"`
	AssetTypes []string `json:"asset_types"`
	Limit      int      `json:"limit"`
}

// InsightRequest is the body of POST /api/ai/insights and
// POST /api/ai/profile-analysis.
type InsightRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
}

// GetRecommendations returns personalized asset recommendations.
// POST /api/ai/recommendations
func (h *AdvisoryHandlers) GetRecommendations(c *gin.Context) {
	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if _, err := uuid.Parse(req.CustomerID); err != nil {
		respondBadRequest(c, "customer_id must be a valid UUID")
		return
	}

	recommendations, err := h.advisoryService.GetRecommendations(
		c.Request.Context(), req.CustomerID, req.AssetTypes, req.Limit)
	if err != nil {
		h.logger.Error("Failed to generate recommendations", "error", err, "customer_id", req.CustomerID)
		respondInternalError(c, "Failed to generate recommendations")
		return
	}

	c.JSON(http.StatusOK, recommendations)
}

// GetInsights returns behavioral insights, suggested actions and warnings.
// POST /api/ai/insights
func (h *AdvisoryHandlers) GetInsights(c *gin.Context) {
	var req InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if _, err := uuid.Parse(req.CustomerID); err != nil {
		respondBadRequest(c, "customer_id must be a valid UUID")
		return
	}

	report, err := h.advisoryService.GenerateInsights(c.Request.Context(), req.CustomerID)
	if err != nil {
		h.logger.Error("Failed to generate insights", "error", err, "customer_id", req.CustomerID)
		respondInternalError(c, "Failed to generate insights")
		return
	}

	c.JSON(http.StatusOK, report)
}

// AnalyzeProfile returns the customer's behavioral profile summary.
// POST /api/ai/profile-analysis
func (h *AdvisoryHandlers) AnalyzeProfile(c *gin.Context) {
	var req InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if _, err := uuid.Parse(req.CustomerID); err != nil {
		respondBadRequest(c, "customer_id must be a valid UUID")
		return
	}

	analysis, err := h.advisoryService.AnalyzeProfile(c.Request.Context(), req.CustomerID)
	if err != nil {
		h.logger.Error("Failed to analyze profile", "error", err, "customer_id", req.CustomerID)
		respondInternalError(c, "Failed to analyze profile")
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// GetTrendingAssets returns assets popular in recent marketplace activity.
// GET /api/ai/trending-assets?limit=5
func (h *AdvisoryHandlers) GetTrendingAssets(c *gin.Context) {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondBadRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	trending := h.advisoryService.GetTrendingAssets(c.Request.Context(), limit)
	c.JSON(http.StatusOK, gin.H{"trending": trending})
}

// GetMarketSentiment returns the market sentiment snapshot.
// GET /api/ai/market-sentiment
func (h *AdvisoryHandlers) GetMarketSentiment(c *gin.Context) {
	c.JSON(http.StatusOK, h.advisoryService.GetMarketSentiment())
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/superapp/advisor-service/internal/domain/entities"
)

// respondError sends a standardized error response.
func respondError(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.JSON(status, entities.AdvisorErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// respondBadRequest sends a bad request error.
func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "BAD_REQUEST", message, nil)
}

// respondInternalError sends an internal server error.
func respondInternalError(c *gin.Context, message string) {
	respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", message, nil)
}

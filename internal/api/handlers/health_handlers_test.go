package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCache struct {
	pingErr error
}

func (stubCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}
func (stubCache) Get(ctx context.Context, key string, dest interface{}) error { return nil }
func (stubCache) Del(ctx context.Context, key string) error { return nil }
func (s stubCache) Ping(ctx context.Context) error { return s.pingErr }
func (stubCache) Close() error { return nil }

func healthRouter(h *HealthHandlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", h.Root)
	router.GET("/api/ai/health", h.Health)
	return router
}

func TestRoot(t *testing.T) {
	router := healthRouter(NewHealthHandlers(nil))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "AI Recommendation Service", body["service"])
}

func TestHealth(t *testing.T) {
	cacheStatus := func(h *HealthHandlers) string {
		recorder := httptest.NewRecorder()
		healthRouter(h).ServeHTTP(recorder,
			httptest.NewRequest(http.MethodGet, "/api/ai/health", nil))
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Services map[string]string `json:"services"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		return body.Services["cache"]
	}

	assert.Equal(t, "disabled", cacheStatus(NewHealthHandlers(nil)))
	assert.Equal(t, "operational", cacheStatus(NewHealthHandlers(stubCache{})))
	assert.Equal(t, "unavailable", cacheStatus(NewHealthHandlers(stubCache{pingErr: errors.New("down")})))
}

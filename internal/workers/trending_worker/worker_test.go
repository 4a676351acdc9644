package trending_worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/superapp/advisor-service/internal/domain/entities"
	"github.com/superapp/advisor-service/internal/domain/services/advisory"
	"github.com/superapp/advisor-service/internal/infrastructure/cache"
)

type stubCatalog struct {
	assets []entities.Asset
	err    error
}

func (s *stubCatalog) GetAssets(ctx context.Context) ([]entities.Asset, error) {
	return s.assets, s.err
}

type recordingCache struct {
	data map[string][]byte
	ttl  time.Duration
}

func newRecordingCache() *recordingCache {
	return &recordingCache{data: make(map[string][]byte)}
}

func (c *recordingCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = data
	c.ttl = expiration
	return nil
}

func (c *recordingCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := c.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *recordingCache) Del(ctx context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func (c *recordingCache) Ping(ctx context.Context) error { return nil }
func (c *recordingCache) Close() error { return nil }

func TestWorkerRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes ranked trending assets", func(t *testing.T) {
		catalog := &stubCatalog{assets: []entities.Asset{
			{ID: "a1", Name: "Premium Fund", AssetType: "STOCK", Status: "ACTIVE",
				MinimumInvestment: decimal.NewFromInt(500), PartnerID: "p"},
			{ID: "a2", Name: "Plain Fund", AssetType: "UITF", Status: "ACTIVE",
				MinimumInvestment: decimal.NewFromInt(10000)},
			{ID: "a3", Name: "Closed Fund", AssetType: "UITF", Status: "INACTIVE"},
		}}
		recorder := newRecordingCache()
		worker := NewWorker(catalog, recorder, Config{Limit: 5, CacheTTL: 10 * time.Minute}, zap.NewNop())

		worker.Refresh(ctx)

		var published []entities.TrendingAsset
		require.NoError(t, recorder.Get(ctx, advisory.TrendingCacheKey, &published))
		require.Len(t, published, 2)
		assert.Equal(t, "a1", published[0].AssetID)
		assert.Equal(t, 10*time.Minute, recorder.ttl)
	})

	t.Run("skips the write when the catalog is unavailable", func(t *testing.T) {
		catalog := &stubCatalog{err: errors.New("marketplace down")}
		recorder := newRecordingCache()
		worker := NewWorker(catalog, recorder, Config{}, zap.NewNop())

		worker.Refresh(ctx)

		assert.Empty(t, recorder.data)
	})

	t.Run("skips the write when nothing is active", func(t *testing.T) {
		catalog := &stubCatalog{assets: []entities.Asset{
			{ID: "a1", Name: "Closed Fund", AssetType: "UITF", Status: "INACTIVE"},
		}}
		recorder := newRecordingCache()
		worker := NewWorker(catalog, recorder, Config{}, zap.NewNop())

		worker.Refresh(ctx)

		assert.Empty(t, recorder.data)
	})
}

func TestNewWorkerDefaults(t *testing.T) {
	worker := NewWorker(&stubCatalog{}, newRecordingCache(), Config{}, zap.NewNop())

	assert.Equal(t, DefaultConfig().Schedule, worker.config.Schedule)
	assert.Equal(t, DefaultConfig().Limit, worker.config.Limit)
	assert.Equal(t, DefaultConfig().CacheTTL, worker.config.CacheTTL)
}

func TestWorkerStartStop(t *testing.T) {
	catalog := &stubCatalog{assets: []entities.Asset{
		{ID: "a1", Name: "Fund", AssetType: "UITF", Status: "ACTIVE",
			MinimumInvestment: decimal.NewFromInt(500)},
	}}
	recorder := newRecordingCache()
	worker := NewWorker(catalog, recorder, Config{Schedule: "@every 1h"}, zap.NewNop())

	require.NoError(t, worker.Start(context.Background()))
	defer worker.Stop()

	// Start refreshes once before scheduling.
	assert.Contains(t, recorder.data, advisory.TrendingCacheKey)
}

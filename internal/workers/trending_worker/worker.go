// Package trending_worker refreshes the trending-assets cache on a cron
// schedule so the trending endpoint never recomputes on the request path.
package trending_worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/superapp/advisor-service/internal/domain/entities"
	"github.com/superapp/advisor-service/internal/domain/services/advisory"
	"github.com/superapp/advisor-service/internal/infrastructure/cache"
)

// CatalogProvider supplies the marketplace asset catalog.
type CatalogProvider interface {
	GetAssets(ctx context.Context) ([]entities.Asset, error)
}

// Config controls the refresh schedule and list size.
type Config struct {
	Schedule string
	Limit    int
	CacheTTL time.Duration
}

// DefaultConfig returns the worker defaults.
func DefaultConfig() Config {
	return Config{
		Schedule: "@every 15m",
		Limit:    5,
		// Two refresh intervals, so a missed run keeps serving stale data
		// instead of falling back to the static entry.
		CacheTTL: 30 * time.Minute,
	}
}

// Worker periodically recomputes trending assets into the cache.
type Worker struct {
	catalog CatalogProvider
	cache   cache.RedisClient
	config  Config
	cron    *cron.Cron
	logger  *zap.Logger
}

// NewWorker creates a trending worker.
func NewWorker(catalog CatalogProvider, cacheClient cache.RedisClient, config Config, logger *zap.Logger) *Worker {
	if config.Schedule == "" {
		config.Schedule = DefaultConfig().Schedule
	}
	if config.Limit <= 0 {
		config.Limit = DefaultConfig().Limit
	}
	if config.CacheTTL <= 0 {
		config.CacheTTL = DefaultConfig().CacheTTL
	}
	return &Worker{
		catalog: catalog,
		cache:   cacheClient,
		config:  config,
		cron:    cron.New(),
		logger:  logger,
	}
}

// Start refreshes once immediately, then on the configured schedule.
func (w *Worker) Start(ctx context.Context) error {
	w.Refresh(ctx)

	_, err := w.cron.AddFunc(w.config.Schedule, func() {
		refreshCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		w.Refresh(refreshCtx)
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	w.logger.Info("Trending worker started", zap.String("schedule", w.config.Schedule))
	return nil
}

// Stop halts the schedule and waits for a running refresh to finish.
func (w *Worker) Stop() {
	stopCtx := w.cron.Stop()
	<-stopCtx.Done()
	w.logger.Info("Trending worker stopped")
}

// Refresh recomputes the trending list and writes it to the cache.
func (w *Worker) Refresh(ctx context.Context) {
	catalog, err := w.catalog.GetAssets(ctx)
	if err != nil {
		w.logger.Warn("Trending refresh skipped, catalog unavailable", zap.Error(err))
		return
	}

	trending := advisory.TrendingFromCatalog(catalog, w.config.Limit)
	if len(trending) == 0 {
		w.logger.Info("Trending refresh produced no active assets")
		return
	}

	if err := w.cache.Set(ctx, advisory.TrendingCacheKey, trending, w.config.CacheTTL); err != nil {
		w.logger.Error("Failed to write trending cache", zap.Error(err))
		return
	}

	w.logger.Debug("Trending assets refreshed", zap.Int("count", len(trending)))
}

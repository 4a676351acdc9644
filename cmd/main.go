package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/superapp/advisor-service/internal/adapters/marketplace"
	"github.com/superapp/advisor-service/internal/api/routes"
	"github.com/superapp/advisor-service/internal/domain/services/advisory"
	"github.com/superapp/advisor-service/internal/infrastructure/cache"
	"github.com/superapp/advisor-service/internal/infrastructure/config"
	"github.com/superapp/advisor-service/internal/workers/trending_worker"
	"github.com/superapp/advisor-service/pkg/graceful"
	"github.com/superapp/advisor-service/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New(cfg.LogLevel, cfg.Environment)
	defer log.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Redis is optional: without it every request recomputes and trending
	// serves its static fallback.
	var cacheClient cache.RedisClient
	if cfg.Redis.Enabled {
		cacheClient, err = cache.NewRedisClient(&cfg.Redis, log.Zap())
		if err != nil {
			log.Warn("Redis unavailable, continuing without response cache", "error", err)
			cacheClient = nil
		} else {
			// Closed after the server drains, so in-flight requests keep
			// their cache.
			defer func() {
				if err := cacheClient.Close(); err != nil {
					log.Warn("Failed to close Redis connection", "error", err)
				}
			}()
		}
	}

	marketplaceClient := marketplace.NewClient(marketplace.Config{
		BaseURL: cfg.Marketplace.BaseURL,
		Timeout: time.Duration(cfg.Marketplace.TimeoutSeconds) * time.Second,
	}, log.Zap())

	advisoryService := advisory.NewService(marketplaceClient, cacheClient, advisory.Options{
		MinScore:   cfg.Advisory.MinScore,
		MaxResults: cfg.Advisory.MaxResults,
		CacheTTL:   time.Duration(cfg.Advisory.CacheTTLSeconds) * time.Second,
	}, log.Zap())

	var trendingWorker *trending_worker.Worker
	if cfg.Trending.Enabled && cacheClient != nil {
		trendingWorker = trending_worker.NewWorker(marketplaceClient, cacheClient, trending_worker.Config{
			Schedule: cfg.Trending.Schedule,
			Limit:    cfg.Trending.Limit,
		}, log.Zap())
		if err := trendingWorker.Start(context.Background()); err != nil {
			log.Fatal("Failed to start trending worker", "error", err)
		}
	}

	router := routes.SetupRoutes(cfg, advisoryService, cacheClient, log)

	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	shutdown := graceful.NewShutdownManager(server, 30*time.Second, log)
	if trendingWorker != nil {
		shutdown.Register("trending_worker", func(ctx context.Context) error {
			trendingWorker.Stop()
			return nil
		})
	}
	go func() {
		log.Info("Starting server",
			"port", cfg.Server.Port,
			"environment", cfg.Environment,
			"marketplace", cfg.Marketplace.BaseURL,
		)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", "error", err)
		}
	}()

	shutdown.WaitForShutdown()
}

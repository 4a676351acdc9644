package advisory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/superapp/advisor-service/internal/domain/entities"
	"github.com/superapp/advisor-service/internal/infrastructure/cache"
	"github.com/superapp/advisor-service/pkg/metrics"
)

// MarketplaceData supplies the customer records the engine scores over.
// Implementations return an error on fetch failure; the service substitutes
// the documented default record so the pure core never sees a failure.
type MarketplaceData interface {
	GetProfile(ctx context.Context, customerID string) (entities.InvestmentProfile, error)
	GetPortfolio(ctx context.Context, customerID string) (entities.Portfolio, error)
	GetTransactions(ctx context.Context, customerID string) ([]entities.Transaction, error)
	GetAssets(ctx context.Context) ([]entities.Asset, error)
}

// TrendingCacheKey is where the trending worker publishes its result.
const TrendingCacheKey = "advisor:trending"

// Options tunes the service boundary.
type Options struct {
	MinScore   float64
	MaxResults int
	CacheTTL   time.Duration
}

// Service orchestrates data fetching, caching and the pure advisory core.
type Service struct {
	marketplace MarketplaceData
	cache       cache.RedisClient
	opts        Options
	logger      *zap.Logger
}

// NewService creates the advisory service. cache may be nil, in which case
// every request recomputes.
func NewService(marketplace MarketplaceData, cacheClient cache.RedisClient, opts Options, logger *zap.Logger) *Service {
	if opts.MinScore == 0 {
		opts.MinScore = DefaultMinScore
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultLimit
	}
	return &Service{
		marketplace: marketplace,
		cache:       cacheClient,
		opts:        opts,
		logger:      logger,
	}
}

// customerData is one complete-or-defaulted snapshot of everything the core
// needs for a customer.
type customerData struct {
	profile      entities.InvestmentProfile
	portfolio    entities.Portfolio
	transactions []entities.Transaction
}

// fetchCustomerData gathers profile, portfolio and transactions, degrading
// each independently to its default record when the marketplace fails.
func (s *Service) fetchCustomerData(ctx context.Context, customerID string) customerData {
	profile, err := s.marketplace.GetProfile(ctx, customerID)
	if err != nil {
		s.logger.Warn("Falling back to default profile",
			zap.String("customer_id", customerID), zap.Error(err))
		profile = entities.DefaultInvestmentProfile()
	}

	portfolio, err := s.marketplace.GetPortfolio(ctx, customerID)
	if err != nil {
		s.logger.Warn("Falling back to empty portfolio",
			zap.String("customer_id", customerID), zap.Error(err))
		portfolio = entities.Portfolio{Holdings: []entities.Holding{}}
	}

	transactions, err := s.marketplace.GetTransactions(ctx, customerID)
	if err != nil {
		s.logger.Warn("Falling back to empty transaction history",
			zap.String("customer_id", customerID), zap.Error(err))
		transactions = []entities.Transaction{}
	}

	return customerData{profile: profile, portfolio: portfolio, transactions: transactions}
}

// GetRecommendations ranks the asset catalog for one customer.
func (s *Service) GetRecommendations(ctx context.Context, customerID string, assetTypes []string, limit int) ([]entities.Recommendation, error) {
	if limit <= 0 || limit > s.opts.MaxResults {
		limit = s.opts.MaxResults
	}

	cacheKey := recommendationCacheKey(customerID, assetTypes, limit)
	var cached []entities.Recommendation
	if s.cacheGet(ctx, "recommendations", cacheKey, &cached) {
		return cached, nil
	}

	data := s.fetchCustomerData(ctx, customerID)

	catalog, err := s.marketplace.GetAssets(ctx)
	if err != nil {
		s.logger.Warn("Falling back to empty asset catalog", zap.Error(err))
		catalog = []entities.Asset{}
	}

	recommendations := Rank(catalog, data.profile, data.portfolio, RankOptions{
		AssetTypes: assetTypes,
		MinScore:   s.opts.MinScore,
		Limit:      limit,
	})

	metrics.RecommendationsServed.Add(float64(len(recommendations)))
	s.cacheSet(ctx, cacheKey, recommendations)

	return recommendations, nil
}

// GenerateInsights runs the insight rule passes for one customer.
func (s *Service) GenerateInsights(ctx context.Context, customerID string) (entities.InsightReport, error) {
	cacheKey := fmt.Sprintf("advisor:insights:%s", customerID)
	var cached entities.InsightReport
	if s.cacheGet(ctx, "insights", cacheKey, &cached) {
		return cached, nil
	}

	data := s.fetchCustomerData(ctx, customerID)
	report := GenerateInsights(data.profile, data.portfolio, data.transactions)

	s.cacheSet(ctx, cacheKey, report)
	return report, nil
}

// AnalyzeProfile produces the behavioral profile summary for one customer.
func (s *Service) AnalyzeProfile(ctx context.Context, customerID string) (entities.ProfileAnalysis, error) {
	cacheKey := fmt.Sprintf("advisor:profile:%s", customerID)
	var cached entities.ProfileAnalysis
	if s.cacheGet(ctx, "profile_analysis", cacheKey, &cached) {
		return cached, nil
	}

	data := s.fetchCustomerData(ctx, customerID)
	analysis := AnalyzeProfile(data.profile, data.portfolio, data.transactions)
	analysis.CustomerID = customerID

	s.cacheSet(ctx, cacheKey, analysis)
	return analysis, nil
}

// GetTrendingAssets serves the list the trending worker maintains, with a
// static fallback when the cache is cold or disabled.
func (s *Service) GetTrendingAssets(ctx context.Context, limit int) []entities.TrendingAsset {
	if limit <= 0 {
		limit = 5
	}

	var trending []entities.TrendingAsset
	if s.cache != nil {
		if err := s.cache.Get(ctx, TrendingCacheKey, &trending); err != nil {
			if !errors.Is(err, cache.ErrCacheMiss) {
				s.logger.Warn("Failed to read trending cache", zap.Error(err))
			}
			trending = nil
		}
	}

	if len(trending) == 0 {
		trending = []entities.TrendingAsset{
			{
				AssetID:           "trending-1",
				Name:              "BDO Equity Fund",
				Type:              "UITF",
				TrendScore:        0.95,
				RecentInvestments: 150,
			},
		}
	}

	if len(trending) > limit {
		trending = trending[:limit]
	}
	return trending
}

// GetMarketSentiment returns the current coarse market-mood snapshot.
func (s *Service) GetMarketSentiment() entities.MarketSentiment {
	return entities.MarketSentiment{
		OverallSentiment: "POSITIVE",
		Confidence:       0.75,
		TrendingSectors:  []string{"Technology", "Healthcare"},
		MarketSummary:    "Markets showing positive momentum with strong fundamentals",
		LastUpdated:      time.Now().UTC(),
	}
}

func (s *Service) cacheGet(ctx context.Context, kind, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	err := s.cache.Get(ctx, key, dest)
	if err == nil {
		metrics.CacheHits.WithLabelValues(kind, "hit").Inc()
		return true
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}
	metrics.CacheHits.WithLabelValues(kind, "miss").Inc()
	return false
}

func (s *Service) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil || s.opts.CacheTTL <= 0 {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.opts.CacheTTL); err != nil {
		s.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func recommendationCacheKey(customerID string, assetTypes []string, limit int) string {
	types := append([]string(nil), assetTypes...)
	for i := range types {
		types[i] = strings.ToUpper(types[i])
	}
	sort.Strings(types)
	return fmt.Sprintf("advisor:reco:%s:%s:%d", customerID, strings.Join(types, ","), limit)
}

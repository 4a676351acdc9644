// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and path.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advisor_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// RecommendationsServed counts recommendations returned to customers.
	RecommendationsServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "advisor_recommendations_served_total",
			Help: "Total recommendations returned across all requests",
		},
	)

	// CacheHits counts advisory cache lookups by outcome.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_cache_lookups_total",
			Help: "Advisory response cache lookups by result",
		},
		[]string{"kind", "result"},
	)

	// MarketplaceRequests counts upstream marketplace calls by endpoint and outcome.
	MarketplaceRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_marketplace_requests_total",
			Help: "Marketplace API calls by endpoint and result",
		},
		[]string{"endpoint", "result"},
	)
)

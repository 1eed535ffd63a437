// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysesComputed counts deal analyses by resulting score
	AnalysesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deal_analyses_computed_total",
			Help: "Total number of deal analyses computed, labeled by score",
		},
		[]string{"score"},
	)

	// AnalysisDuration tracks how long a full analysis takes
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "deal_analysis_duration_seconds",
			Help:    "Duration of deal analysis computations",
			Buckets: prometheus.DefBuckets,
		},
	)

	// ListingPagesServed counts listing pages by where they came from
	ListingPagesServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_pages_served_total",
			Help: "Total listing pages served, labeled by source (cache, db, generated)",
		},
		[]string{"source"},
	)

	// CacheHits counts cache hits and misses per cache type
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_requests_total",
			Help: "Cache lookups labeled by cache name and result (hit, miss, error)",
		},
		[]string{"cache", "result"},
	)

	// AlertsSent counts deal alerts by channel and delivery status
	AlertsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deal_alerts_sent_total",
			Help: "Deal alerts sent, labeled by channel (email, sms) and status",
		},
		[]string{"channel", "status"},
	)

	// HTTPRequestDuration tracks request latency per route and status
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency labeled by route and status code",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)
)

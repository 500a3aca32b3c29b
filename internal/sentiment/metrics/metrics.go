package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the sentiment module.
type Metrics struct {
	// Results by source tier and label; degradation shows up as tier drift
	Results *prometheus.CounterVec

	// Latency of the outbound language-model fetch
	FetchLatency prometheus.Histogram

	// Failed language-model fetches
	FetchErrors prometheus.Counter

	// Cache hits avoiding a fetch
	CacheHits prometheus.Counter
}

// New creates a new Metrics instance with all sentiment module metrics registered.
func New() *Metrics {
	return &Metrics{
		Results: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "centseek_sentiment_results_total",
			Help: "Total sentiment results by source tier and label",
		}, []string{"source_tier", "label"}),

		FetchLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "centseek_sentiment_fetch_duration_seconds",
			Help:    "Duration of language-model summary fetches",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}),

		FetchErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "centseek_sentiment_fetch_errors_total",
			Help: "Total failed language-model summary fetches",
		}),

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "centseek_sentiment_cache_hits_total",
			Help: "Total summary cache hits",
		}),
	}
}

// IncrementResult records a produced sentiment result.
func (m *Metrics) IncrementResult(sourceTier, label string) {
	if m != nil {
		m.Results.WithLabelValues(sourceTier, label).Inc()
	}
}

// ObserveFetchLatency records a fetch duration.
func (m *Metrics) ObserveFetchLatency(d time.Duration) {
	if m != nil {
		m.FetchLatency.Observe(d.Seconds())
	}
}

// IncrementFetchError records a failed fetch.
func (m *Metrics) IncrementFetchError() {
	if m != nil {
		m.FetchErrors.Inc()
	}
}

// IncrementCacheHit records a summary served from cache.
func (m *Metrics) IncrementCacheHit() {
	if m != nil {
		m.CacheHits.Inc()
	}
}

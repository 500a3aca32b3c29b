package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the risk module.
type Metrics struct {
	// Evaluation outcomes by tier and whether the coverage override fired
	Outcomes *prometheus.CounterVec

	// Full evaluation latency including model inference
	EvaluateLatency prometheus.Histogram

	// Scoring failures (model unavailable, validation)
	Failures *prometheus.CounterVec
}

// New creates a new Metrics instance with all risk module metrics registered.
func New() *Metrics {
	return &Metrics{
		Outcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "centseek_risk_outcomes_total",
			Help: "Total risk assessments by tier and override",
		}, []string{"tier", "overridden"}),

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "centseek_risk_evaluate_duration_seconds",
			Help:    "Duration of full risk evaluation including model inference",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		Failures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "centseek_risk_failures_total",
			Help: "Total failed risk evaluations by error code",
		}, []string{"code"}),
	}
}

// IncrementOutcome records an assessment outcome.
func (m *Metrics) IncrementOutcome(tier string, overridden bool) {
	if m != nil {
		label := "false"
		if overridden {
			label = "true"
		}
		m.Outcomes.WithLabelValues(tier, label).Inc()
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

// IncrementFailure records a failed evaluation by error code.
func (m *Metrics) IncrementFailure(code string) {
	if m != nil {
		m.Failures.WithLabelValues(code).Inc()
	}
}

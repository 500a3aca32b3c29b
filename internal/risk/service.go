package risk

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"centseek/internal/risk/metrics"
	dErrors "centseek/pkg/domain-errors"
	"centseek/pkg/requestcontext"
)

// Scorer is the classifier boundary. The concrete implementation wraps the
// pretrained gradient-boosting artifact; tests substitute a stub.
type Scorer interface {
	// Score returns a default probability in [0,1] for a built feature vector.
	Score(ctx context.Context, features []float64) (float64, error)
	// GainImportance returns the model's gain-based importance map.
	GainImportance() (map[string]float64, error)
}

// Service runs the decisioning pipeline: feature vector, model score,
// coverage override, tier. It holds no per-evaluation state; every call
// returns a fresh Assessment.
type Service struct {
	scorer     Scorer
	builder    VectorBuilder
	normalizer Normalizer
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithVectorBuilder overrides the default builder, e.g. to include PAY_1 for
// a model trained on the full schema.
func WithVectorBuilder(b VectorBuilder) Option {
	return func(s *Service) {
		s.builder = b
	}
}

// WithNormalizer overrides the profile normalizer's display ceiling.
func WithNormalizer(n Normalizer) Option {
	return func(s *Service) {
		s.normalizer = n
	}
}

func New(scorer Scorer, opts ...Option) (*Service, error) {
	if scorer == nil {
		return nil, fmt.Errorf("scorer is required")
	}

	svc := &Service{
		scorer:     scorer,
		normalizer: NewNormalizer(DefaultAssumedMax),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// Evaluate scores one record and returns the resulting assessment. The
// override runs unconditionally after every successful score, before tiering.
func (s *Service) Evaluate(ctx context.Context, rec MonthlyRecord) (*Assessment, error) {
	start := time.Now()

	vector, err := s.builder.Build(rec)
	if err != nil {
		s.metrics.IncrementFailure(string(dErrors.CodeOf(err)))
		return nil, err
	}

	raw, err := s.scorer.Score(ctx, vector)
	if err != nil {
		s.metrics.IncrementFailure(string(dErrors.CodeOf(err)))
		return nil, err
	}

	probability, overridden := ApplyOverride(rec, raw)
	tier := TierFor(probability)

	s.metrics.IncrementOutcome(string(tier), overridden)
	s.metrics.ObserveEvaluateLatency(time.Since(start))

	if s.logger != nil {
		s.logger.DebugContext(ctx, "record evaluated",
			"raw_probability", raw,
			"probability", probability,
			"overridden", overridden,
			"tier", tier,
		)
	}

	return &Assessment{
		Probability: probability,
		Overridden:  overridden,
		Tier:        tier,
		EvaluatedAt: requestcontext.Now(ctx),
	}, nil
}

// Profile derives the normalized display metrics for a record.
func (s *Service) Profile(rec MonthlyRecord) Profile {
	return s.normalizer.Normalize(rec)
}

// TopImportances returns at most k features ranked by gain descending, ties
// broken by declaration order. Fails when the model never loaded; callers
// surface that rather than substituting a silent default.
func (s *Service) TopImportances(k int) ([]FeatureImportance, error) {
	gains, err := s.scorer.GainImportance()
	if err != nil {
		return nil, err
	}
	return rankImportances(gains, s.builder.FeatureOrder(), k), nil
}

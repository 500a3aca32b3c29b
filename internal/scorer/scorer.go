// Package scorer wraps the pretrained gradient-boosting artifact behind the
// risk.Scorer boundary. The artifact is static: it is loaded exactly once at
// startup, and a failed load puts the adapter into a permanent unavailable
// state instead of retrying, since a retry cannot change the outcome.
package scorer

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/dmitryikh/leaves"

	dErrors "centseek/pkg/domain-errors"
)

// XGBScorer scores feature vectors with an XGBoost ensemble. Gain importances
// come from a JSON sidecar exported at training time; the inference library
// does not carry them.
//
// All fields are written once during New and read-only afterwards, so a
// single XGBScorer is safe to share across concurrent requests.
type XGBScorer struct {
	model       *leaves.Ensemble
	gains       map[string]float64
	unavailable *dErrors.Error
	logger      *slog.Logger
}

type Option func(*XGBScorer)

func WithLogger(logger *slog.Logger) Option {
	return func(s *XGBScorer) {
		s.logger = logger
	}
}

// New loads the model and importance sidecar. It always returns a usable
// adapter: on load failure the adapter is permanently unavailable and every
// Score call fails fast with CodeModelUnavailable.
func New(modelPath, importancePath string, opts ...Option) *XGBScorer {
	s := &XGBScorer{}
	for _, opt := range opts {
		opt(s)
	}

	model, err := leaves.XGEnsembleFromFile(modelPath, true)
	if err != nil {
		s.unavailable = dErrors.Wrap(err, dErrors.CodeModelUnavailable, "load model")
		if s.logger != nil {
			s.logger.Error("model load failed, scoring disabled",
				"model_path", modelPath,
				"error", err,
			)
		}
		return s
	}
	s.model = model

	s.gains, err = loadImportance(importancePath)
	if err != nil {
		// Scoring still works without importances; only the ranker degrades.
		s.gains = map[string]float64{}
		if s.logger != nil {
			s.logger.Warn("importance sidecar load failed, rankings will be empty",
				"importance_path", importancePath,
				"error", err,
			)
		}
	}

	if s.logger != nil {
		s.logger.Info("model loaded",
			"model_path", modelPath,
			"trees", model.NEstimators(),
			"importances", len(s.gains),
		)
	}
	return s
}

// Available reports whether the model loaded; used by the health endpoint.
func (s *XGBScorer) Available() bool {
	return s.unavailable == nil
}

// Score predicts the default probability for a built feature vector. The
// learner emits calibrated probabilities already; the result is clipped to
// [0,1] defensively anyway.
func (s *XGBScorer) Score(_ context.Context, features []float64) (float64, error) {
	if s.unavailable != nil {
		return 0, s.unavailable
	}

	p := s.model.PredictSingle(features, 0)
	return clip(p), nil
}

// GainImportance returns the model's gain-based importance map. Fails with
// CodeModelUnavailable when the model never loaded.
func (s *XGBScorer) GainImportance() (map[string]float64, error) {
	if s.unavailable != nil {
		return nil, s.unavailable
	}
	return s.gains, nil
}

func loadImportance(path string) (map[string]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	gains := map[string]float64{}
	if err := json.Unmarshal(raw, &gains); err != nil {
		return nil, err
	}
	return gains, nil
}

func clip(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

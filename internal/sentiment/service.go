package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"centseek/internal/sentiment/metrics"
	"centseek/internal/sentiment/store"
)

// Prompt is the fixed request sent to the language-model service.
const Prompt = "Summarize the current state of the global economy and general public sentiment in one to two sentences."

// defaultFetchTimeout bounds the outbound language-model call when no
// configuration overrides it.
const defaultFetchTimeout = 15 * time.Second

// TextFetcher is the generative-language boundary.
type TextFetcher interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service produces a macro-sentiment judgment through a three-tier fallback
// chain. Analyze never returns an error: sentiment is an auxiliary signal,
// so every failure path degrades into a well-formed Result instead.
type Service struct {
	fetcher      TextFetcher
	classifier   Classifier
	cache        store.SummaryCache
	cacheTTL     time.Duration
	fetchTimeout time.Duration
	flight       singleflight.Group
	logger       *slog.Logger
	metrics      *metrics.Metrics
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

// WithClassifier sets the local NLP classifier. Leaving it unset (or a
// classifier that errors) routes successful fetches to the keyword scorer.
func WithClassifier(c Classifier) Option {
	return func(s *Service) {
		s.classifier = c
	}
}

// WithCache enables summary reuse across requests for the given TTL.
func WithCache(cache store.SummaryCache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

// WithFetchTimeout bounds each language-model call. A timeout degrades to
// the unavailable tier exactly like a network failure.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.fetchTimeout = d
	}
}

func New(fetcher TextFetcher, opts ...Option) (*Service, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("text fetcher is required")
	}

	svc := &Service{
		fetcher:      fetcher,
		fetchTimeout: defaultFetchTimeout,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// Analyze runs the fallback chain:
//  1. fetch summary text, classify with the NLP classifier (LLM_NLP)
//  2. fetch failed: neutral placeholder with a diagnostic (UNAVAILABLE) —
//     error strings are never classified
//  3. fetch succeeded but the classifier did not: keyword scorer
//     (KEYWORD_FALLBACK)
func (s *Service) Analyze(ctx context.Context) Result {
	text, err := s.summary(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "sentiment summary unavailable", "error", err)
		}
		result := Result{
			Label:      LabelNeutral,
			Score:      0.5,
			Message:    "sentiment unavailable: " + err.Error(),
			SourceTier: SourceUnavailable,
		}
		s.metrics.IncrementResult(string(result.SourceTier), string(result.Label))
		return result
	}

	if s.classifier != nil {
		label, score, cerr := s.classifier.Classify(text)
		if cerr == nil {
			result := Result{Label: label, Score: score, Message: text, SourceTier: SourceLLMNLP}
			s.metrics.IncrementResult(string(result.SourceTier), string(result.Label))
			return result
		}
		if s.logger != nil {
			s.logger.WarnContext(ctx, "NLP classifier failed, using keyword fallback", "error", cerr)
		}
	}

	label, score := KeywordScore(text)
	result := Result{Label: label, Score: score, Message: text, SourceTier: SourceKeywordFallback}
	s.metrics.IncrementResult(string(result.SourceTier), string(result.Label))
	return result
}

// summary returns the macro summary text, preferring the cache. Concurrent
// misses collapse into one outbound call via singleflight.
func (s *Service) summary(ctx context.Context) (string, error) {
	if s.cache != nil {
		if text, ok, err := s.cache.Get(ctx); err == nil && ok {
			s.metrics.IncrementCacheHit()
			return text, nil
		}
	}

	v, err, _ := s.flight.Do("macro-summary", func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()

		start := time.Now()
		text, err := s.fetcher.GenerateContent(fetchCtx, Prompt)
		s.metrics.ObserveFetchLatency(time.Since(start))
		if err != nil {
			s.metrics.IncrementFetchError()
			return "", err
		}

		if s.cache != nil {
			if cerr := s.cache.Set(ctx, text, s.cacheTTL); cerr != nil && s.logger != nil {
				s.logger.WarnContext(ctx, "summary cache write failed", "error", cerr)
			}
		}
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

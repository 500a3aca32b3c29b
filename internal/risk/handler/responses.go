package handler

import (
	"time"

	"centseek/internal/risk"
	"centseek/internal/sentiment"
)

// EvaluateResponse is the HTTP response for POST /risk/evaluate.
type EvaluateResponse struct {
	Probability float64   `json:"probability"`
	Overridden  bool      `json:"overridden"`
	Tier        string    `json:"tier"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// FromAssessment converts a domain Assessment to an HTTP response.
func FromAssessment(a *risk.Assessment) *EvaluateResponse {
	return &EvaluateResponse{
		Probability: a.Probability,
		Overridden:  a.Overridden,
		Tier:        string(a.Tier),
		EvaluatedAt: a.EvaluatedAt,
	}
}

// ProfileResponse is the normalized-profile portion of responses.
type ProfileResponse struct {
	CreditLimitN       float64  `json:"credit_limit_n"`
	AvgBillN           float64  `json:"avg_bill_n"`
	AvgPaymentN        float64  `json:"avg_payment_n"`
	MaxDelayN          float64  `json:"max_delay_n"`
	BillToPaymentRatio *float64 `json:"bill_to_payment_ratio,omitempty"`
}

// FromProfile converts a domain Profile to an HTTP response.
func FromProfile(p risk.Profile) *ProfileResponse {
	return &ProfileResponse{
		CreditLimitN:       p.CreditLimitN,
		AvgBillN:           p.AvgBillN,
		AvgPaymentN:        p.AvgPaymentN,
		MaxDelayN:          p.MaxDelayN,
		BillToPaymentRatio: p.BillToPaymentRatio,
	}
}

// ImportanceEntry is one ranked feature.
type ImportanceEntry struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// ImportanceResponse is the HTTP response for GET /risk/importance.
type ImportanceResponse struct {
	Importances []ImportanceEntry `json:"importances"`
}

// FromImportances converts ranked importances to an HTTP response.
func FromImportances(ranked []risk.FeatureImportance) *ImportanceResponse {
	entries := make([]ImportanceEntry, 0, len(ranked))
	for _, fi := range ranked {
		entries = append(entries, ImportanceEntry{Feature: fi.Feature, Importance: fi.Gain})
	}
	return &ImportanceResponse{Importances: entries}
}

// SentimentResponse mirrors the sentiment Result value object.
type SentimentResponse struct {
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Message    string  `json:"message"`
	SourceTier string  `json:"source_tier"`
}

// FromSentiment converts a sentiment Result to an HTTP response.
func FromSentiment(r sentiment.Result) *SentimentResponse {
	return &SentimentResponse{
		Label:      string(r.Label),
		Score:      r.Score,
		Message:    r.Message,
		SourceTier: string(r.SourceTier),
	}
}

// MetricsResponse is the HTTP response for POST /risk/metrics; exactly one
// payload field is set, matching the selected metric.
type MetricsResponse struct {
	Metric      string              `json:"metric"`
	Profile     *ProfileResponse    `json:"profile,omitempty"`
	Importances *ImportanceResponse `json:"importances,omitempty"`
	Sentiment   *SentimentResponse  `json:"sentiment,omitempty"`
}

package handler

import (
	"strings"

	"centseek/internal/risk"
	dErrors "centseek/pkg/domain-errors"
)

// EvaluateRequest is the HTTP request body for POST /risk/evaluate. Monthly
// fields arrive as month-keyed objects so absent months are detectable;
// pay_delay month 1 is the only one with a defined default (0).
type EvaluateRequest struct {
	CreditLimit *float64        `json:"credit_limit"`
	PayDelay    map[int]int     `json:"pay_delay"`
	BillAmount  map[int]float64 `json:"bill_amount"`
	PaidAmount  map[int]float64 `json:"paid_amount"`

	// Parsed record (populated by Validate)
	parsed risk.MonthlyRecord
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *EvaluateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	if r.CreditLimit == nil {
		return dErrors.New(dErrors.CodeValidation, "credit_limit is required")
	}
	if *r.CreditLimit < 0 {
		return dErrors.New(dErrors.CodeValidation, "credit_limit must be non-negative")
	}
	r.parsed.CreditLimit = *r.CreditLimit

	if err := r.parseDelays(); err != nil {
		return err
	}
	if err := parseAmounts("bill_amount", r.BillAmount, &r.parsed.BillAmount); err != nil {
		return err
	}
	if err := parseAmounts("paid_amount", r.PaidAmount, &r.parsed.PaidAmount); err != nil {
		return err
	}

	return nil
}

func (r *EvaluateRequest) parseDelays() error {
	for month := range r.PayDelay {
		if month < 0 || month > 6 {
			return dErrors.Newf(dErrors.CodeValidation, "pay_delay has unknown month %d", month)
		}
	}

	for month := 0; month <= 6; month++ {
		delay, ok := r.PayDelay[month]
		if !ok {
			// Month 1 is the only delay with a defined default.
			if month == 1 {
				r.parsed.PayDelay[1] = 0
				continue
			}
			return dErrors.Newf(dErrors.CodeValidation, "pay_delay[%d] is required", month)
		}
		if delay < 0 {
			return dErrors.Newf(dErrors.CodeValidation, "pay_delay[%d] must be non-negative", month)
		}
		// Nine means "nine or more months late".
		if delay > 9 {
			delay = 9
		}
		r.parsed.PayDelay[month] = delay
	}
	return nil
}

func parseAmounts(field string, in map[int]float64, out *[6]float64) error {
	for month := range in {
		if month < 1 || month > 6 {
			return dErrors.Newf(dErrors.CodeValidation, "%s has unknown month %d", field, month)
		}
	}

	for month := 1; month <= 6; month++ {
		amount, ok := in[month]
		if !ok {
			return dErrors.Newf(dErrors.CodeValidation, "%s[%d] is required", field, month)
		}
		if amount < 0 {
			return dErrors.Newf(dErrors.CodeValidation, "%s[%d] must be non-negative", field, month)
		}
		out[month-1] = amount
	}
	return nil
}

// Record returns the validated immutable record.
func (r *EvaluateRequest) Record() risk.MonthlyRecord {
	return r.parsed
}

// Metric-selection tokens accepted by POST /risk/metrics.
const (
	MetricRiskProfile       = "Risk Profile"
	MetricFeatureImportance = "Feature Importance"
	MetricSentiment         = "Sentiment Analysis"
)

// MetricsRequest is the HTTP request body for POST /risk/metrics: one
// metric-selection token, plus the submitted record when the metric needs it.
type MetricsRequest struct {
	Metric string           `json:"metric"`
	Record *EvaluateRequest `json:"record,omitempty"`
	TopK   int              `json:"top_k,omitempty"`
}

// Validate validates the token and, for record-backed metrics, the record.
func (r *MetricsRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.Metric = strings.TrimSpace(r.Metric)
	switch r.Metric {
	case MetricRiskProfile:
		if r.Record == nil {
			return dErrors.New(dErrors.CodeValidation, "record is required for the Risk Profile metric")
		}
		return r.Record.Validate()
	case MetricFeatureImportance, MetricSentiment:
		if r.TopK < 0 {
			return dErrors.New(dErrors.CodeValidation, "top_k must be non-negative")
		}
		return nil
	case "":
		return dErrors.New(dErrors.CodeValidation, "metric is required")
	default:
		return dErrors.Newf(dErrors.CodeValidation, "unknown metric %q", r.Metric)
	}
}

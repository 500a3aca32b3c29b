package risk

import "time"

// MonthlyRecord is the unit submitted per evaluation: six months of payment
// history plus the account credit limit. It is built once by request
// validation and never mutated afterwards.
type MonthlyRecord struct {
	CreditLimit float64

	// PayDelay holds the delay codes for months 0..6, index by month.
	// 0 means paid on time; codes are clamped at 9 (nine or more months late).
	PayDelay [7]int

	// BillAmount and PaidAmount hold months 1..6 at indices 0..5.
	BillAmount [6]float64
	PaidAmount [6]float64
}

// BillSum returns cumulative billing over months 1..6.
func (r MonthlyRecord) BillSum() float64 {
	var sum float64
	for _, v := range r.BillAmount {
		sum += v
	}
	return sum
}

// PaidSum returns cumulative payments over months 1..6.
func (r MonthlyRecord) PaidSum() float64 {
	var sum float64
	for _, v := range r.PaidAmount {
		sum += v
	}
	return sum
}

// MaxDelay returns the worst delay code across months 0..6.
func (r MonthlyRecord) MaxDelay() int {
	max := 0
	for _, d := range r.PayDelay {
		if d > max {
			max = d
		}
	}
	return max
}

// Tier is the discrete risk bucket derived from a default probability.
type Tier string

const (
	TierVeryUnlikely Tier = "VERY_UNLIKELY"
	TierModerate     Tier = "MODERATE"
	TierLikely       Tier = "LIKELY"
)

// Assessment is the immutable result of one evaluation. Callers decide what
// to retain; the service keeps no state between calls.
type Assessment struct {
	Probability float64
	Overridden  bool
	Tier        Tier
	EvaluatedAt time.Time
}

// Profile holds the four bounded summary metrics derived from a record for
// comparative display. Ratio is nil when the record shows no payments.
type Profile struct {
	CreditLimitN       float64
	AvgBillN           float64
	AvgPaymentN        float64
	MaxDelayN          float64
	BillToPaymentRatio *float64
}

// FeatureImportance pairs a feature name with its model-reported gain.
type FeatureImportance struct {
	Feature string
	Gain    float64
}

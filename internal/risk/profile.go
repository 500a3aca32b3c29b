package risk

// DefaultAssumedMax is the display ceiling for monetary profile metrics.
// It is a presentation heuristic with no statistical basis; override it
// through configuration when the customer base warrants a different scale.
const DefaultAssumedMax = 100000

// Normalizer derives bounded summary metrics from a record for comparative
// display. Pure derivation, no side effects.
type Normalizer struct {
	AssumedMax float64
}

// NewNormalizer builds a Normalizer, falling back to DefaultAssumedMax for
// non-positive ceilings.
func NewNormalizer(assumedMax float64) Normalizer {
	if assumedMax <= 0 {
		assumedMax = DefaultAssumedMax
	}
	return Normalizer{AssumedMax: assumedMax}
}

// Normalize scales credit limit and monthly averages to a common [0,10]
// range and caps the worst delay code at 9. The bill-to-payment ratio is
// omitted when the record shows no payments; division by zero is guarded,
// never propagated.
func (n Normalizer) Normalize(rec MonthlyRecord) Profile {
	months := float64(len(rec.BillAmount))
	avgBill := rec.BillSum() / months
	avgPayment := rec.PaidSum() / months

	p := Profile{
		CreditLimitN: n.scale(rec.CreditLimit),
		AvgBillN:     n.scale(avgBill),
		AvgPaymentN:  n.scale(avgPayment),
		MaxDelayN:    float64(min(rec.MaxDelay(), 9)),
	}

	if avgPayment > 0 {
		ratio := avgBill / avgPayment
		p.BillToPaymentRatio = &ratio
	}

	return p
}

func (n Normalizer) scale(raw float64) float64 {
	scaled := raw / n.AssumedMax * 10
	if scaled > 10 {
		return 10
	}
	return scaled
}

package risk

// ApplyOverride applies the payment-coverage rule to a raw model probability.
// A customer whose cumulative payments meet or exceed cumulative billing
// cannot be meaningfully at risk, so the probability is forced to zero no
// matter what the model emitted.
// This is pure domain logic - no I/O, no side effects.
func ApplyOverride(rec MonthlyRecord, raw float64) (probability float64, overridden bool) {
	if rec.BillSum() <= rec.PaidSum() {
		return 0.0, true
	}
	return raw, false
}

// TierFor maps a final probability to its risk tier. Intervals are
// closed-left/open-right, with the top interval closed on both ends.
// Total and deterministic: identical probability always yields identical tier.
func TierFor(probability float64) Tier {
	switch {
	case probability < 0.4:
		return TierVeryUnlikely
	case probability < 0.5:
		return TierModerate
	default:
		return TierLikely
	}
}

package risk

import (
	dErrors "centseek/pkg/domain-errors"
)

// Feature names in the order the classifier was trained on. PAY_1 is absent
// from the trained schema even though the form collects the month-1 delay
// code; VectorBuilder can reinstate it behind IncludePay1 for models trained
// on the full schema.
var baseFeatureOrder = []string{
	"LIMIT_BAL",
	"PAY_0", "PAY_2", "PAY_3", "PAY_4", "PAY_5", "PAY_6",
	"BILL_AMT1", "BILL_AMT2", "BILL_AMT3", "BILL_AMT4", "BILL_AMT5", "BILL_AMT6",
	"PAY_AMT1", "PAY_AMT2", "PAY_AMT3", "PAY_AMT4", "PAY_AMT5", "PAY_AMT6",
}

// VectorBuilder assembles validated records into the fixed-order numeric
// vector the classifier expects. Pure transform, no side effects.
type VectorBuilder struct {
	// IncludePay1 inserts PAY_1 after PAY_0. Only valid for a model trained
	// with the month-1 code present.
	IncludePay1 bool
}

// FeatureOrder returns the feature names in declaration order.
func (b VectorBuilder) FeatureOrder() []string {
	if !b.IncludePay1 {
		return append([]string(nil), baseFeatureOrder...)
	}
	order := make([]string, 0, len(baseFeatureOrder)+1)
	order = append(order, "LIMIT_BAL", "PAY_0", "PAY_1")
	order = append(order, baseFeatureOrder[2:]...)
	return order
}

// Build converts a record into the feature vector, re-checking the domain
// invariants so a vector can never be produced from a malformed record.
func (b VectorBuilder) Build(rec MonthlyRecord) ([]float64, error) {
	if rec.CreditLimit < 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "credit_limit must be non-negative")
	}
	for month, delay := range rec.PayDelay {
		if delay < 0 || delay > 9 {
			return nil, dErrors.Newf(dErrors.CodeValidation, "pay_delay[%d] must be in [0,9]", month)
		}
	}
	for i, amt := range rec.BillAmount {
		if amt < 0 {
			return nil, dErrors.Newf(dErrors.CodeValidation, "bill_amount[%d] must be non-negative", i+1)
		}
	}
	for i, amt := range rec.PaidAmount {
		if amt < 0 {
			return nil, dErrors.Newf(dErrors.CodeValidation, "paid_amount[%d] must be non-negative", i+1)
		}
	}

	vector := make([]float64, 0, len(baseFeatureOrder)+1)
	vector = append(vector, rec.CreditLimit)
	vector = append(vector, float64(rec.PayDelay[0]))
	if b.IncludePay1 {
		vector = append(vector, float64(rec.PayDelay[1]))
	}
	for month := 2; month <= 6; month++ {
		vector = append(vector, float64(rec.PayDelay[month]))
	}
	for _, amt := range rec.BillAmount {
		vector = append(vector, amt)
	}
	for _, amt := range rec.PaidAmount {
		vector = append(vector, amt)
	}
	return vector, nil
}

package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizer_Normalize(t *testing.T) {
	t.Run("scales monetary metrics to the display range", func(t *testing.T) {
		rec := MonthlyRecord{
			CreditLimit: 50000,
			BillAmount:  [6]float64{10000, 10000, 10000, 10000, 10000, 10000},
			PaidAmount:  [6]float64{5000, 5000, 5000, 5000, 5000, 5000},
			PayDelay:    [7]int{0, 0, 3, 0, 0, 0, 0},
		}

		p := NewNormalizer(100000).Normalize(rec)

		assert.InDelta(t, 5.0, p.CreditLimitN, 1e-9)
		assert.InDelta(t, 1.0, p.AvgBillN, 1e-9)
		assert.InDelta(t, 0.5, p.AvgPaymentN, 1e-9)
		assert.Equal(t, 3.0, p.MaxDelayN)
		require.NotNil(t, p.BillToPaymentRatio)
		assert.InDelta(t, 2.0, *p.BillToPaymentRatio, 1e-9)
	})

	t.Run("caps at the top of the display range", func(t *testing.T) {
		rec := MonthlyRecord{CreditLimit: 5000000}

		p := NewNormalizer(100000).Normalize(rec)
		assert.Equal(t, 10.0, p.CreditLimitN)
	})

	t.Run("omits the ratio when no payments were made", func(t *testing.T) {
		rec := MonthlyRecord{
			BillAmount: [6]float64{100, 100, 100, 100, 100, 100},
		}

		p := NewNormalizer(100000).Normalize(rec)
		assert.Nil(t, p.BillToPaymentRatio)
	})

	t.Run("delay metric is capped at nine", func(t *testing.T) {
		rec := MonthlyRecord{PayDelay: [7]int{0, 0, 0, 9, 0, 0, 0}}

		p := NewNormalizer(100000).Normalize(rec)
		assert.Equal(t, 9.0, p.MaxDelayN)
	})

	t.Run("non-positive ceiling falls back to the default", func(t *testing.T) {
		n := NewNormalizer(0)
		assert.Equal(t, float64(DefaultAssumedMax), n.AssumedMax)
	})
}

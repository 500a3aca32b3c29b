package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor_Breakpoints(t *testing.T) {
	cases := []struct {
		probability float64
		want        Tier
	}{
		{0.0, TierVeryUnlikely},
		{0.39999, TierVeryUnlikely},
		{0.4, TierModerate},
		{0.49999, TierModerate},
		{0.5, TierLikely},
		{0.75, TierLikely},
		{1.0, TierLikely},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, TierFor(tc.probability), "probability %v", tc.probability)
	}
}

func TestApplyOverride(t *testing.T) {
	t.Run("paid covering billed forces probability to zero", func(t *testing.T) {
		rec := MonthlyRecord{
			BillAmount: [6]float64{100, 100, 100, 100, 100, 100},
			PaidAmount: [6]float64{100, 100, 100, 100, 100, 100},
		}

		probability, overridden := ApplyOverride(rec, 0.97)
		assert.Equal(t, 0.0, probability)
		assert.True(t, overridden)
	})

	t.Run("paid exceeding billed forces probability to zero", func(t *testing.T) {
		rec := MonthlyRecord{
			BillAmount: [6]float64{50, 50, 50, 50, 50, 50},
			PaidAmount: [6]float64{100, 0, 100, 0, 100, 100},
		}

		probability, overridden := ApplyOverride(rec, 0.6)
		assert.Equal(t, 0.0, probability)
		assert.True(t, overridden)
	})

	t.Run("unpaid bills pass the raw probability through", func(t *testing.T) {
		rec := MonthlyRecord{
			BillAmount: [6]float64{100, 100, 100, 100, 100, 100},
			PaidAmount: [6]float64{},
		}

		probability, overridden := ApplyOverride(rec, 0.42)
		assert.Equal(t, 0.42, probability)
		assert.False(t, overridden)
	})

	t.Run("zero billing still counts as covered", func(t *testing.T) {
		probability, overridden := ApplyOverride(MonthlyRecord{}, 0.9)
		assert.Equal(t, 0.0, probability)
		assert.True(t, overridden)
	})
}

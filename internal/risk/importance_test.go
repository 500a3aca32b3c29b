package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankImportances(t *testing.T) {
	order := []string{"LIMIT_BAL", "PAY_0", "PAY_2", "PAY_3"}

	t.Run("orders by gain descending", func(t *testing.T) {
		gains := map[string]float64{
			"LIMIT_BAL": 2.0,
			"PAY_0":     9.5,
			"PAY_2":     4.1,
			"PAY_3":     0.3,
		}

		ranked := rankImportances(gains, order, 10)
		require.Len(t, ranked, 4)
		assert.Equal(t, "PAY_0", ranked[0].Feature)
		assert.Equal(t, "PAY_2", ranked[1].Feature)
		assert.Equal(t, "LIMIT_BAL", ranked[2].Feature)
		assert.Equal(t, "PAY_3", ranked[3].Feature)
	})

	t.Run("ties keep declaration order", func(t *testing.T) {
		gains := map[string]float64{
			"LIMIT_BAL": 1.0,
			"PAY_0":     1.0,
			"PAY_2":     1.0,
		}

		ranked := rankImportances(gains, order, 10)
		require.Len(t, ranked, 3)
		assert.Equal(t, "LIMIT_BAL", ranked[0].Feature)
		assert.Equal(t, "PAY_0", ranked[1].Feature)
		assert.Equal(t, "PAY_2", ranked[2].Feature)
	})

	t.Run("truncates to k entries", func(t *testing.T) {
		gains := map[string]float64{
			"LIMIT_BAL": 4, "PAY_0": 3, "PAY_2": 2, "PAY_3": 1,
		}

		ranked := rankImportances(gains, order, 2)
		require.Len(t, ranked, 2)
		assert.Equal(t, "LIMIT_BAL", ranked[0].Feature)
	})

	t.Run("non-positive k falls back to the default", func(t *testing.T) {
		gains := map[string]float64{"PAY_0": 1}
		ranked := rankImportances(gains, order, 0)
		assert.Len(t, ranked, 1)
	})

	t.Run("features absent from the gain map are excluded", func(t *testing.T) {
		gains := map[string]float64{"PAY_2": 5}
		ranked := rankImportances(gains, order, 10)
		require.Len(t, ranked, 1)
		assert.Equal(t, "PAY_2", ranked[0].Feature)
	})
}

package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaderClassifier(t *testing.T) {
	c := NewVaderClassifier()

	t.Run("positive text", func(t *testing.T) {
		label, score, err := c.Classify("The economy is doing great, markets are happy and thriving.")
		require.NoError(t, err)
		assert.Equal(t, LabelPositive, label)
		assert.Greater(t, score, 0.5)
		assert.LessOrEqual(t, score, 1.0)
	})

	t.Run("negative text", func(t *testing.T) {
		label, score, err := c.Classify("The economy is terrible, a horrible disaster for everyone.")
		require.NoError(t, err)
		assert.Equal(t, LabelNegative, label)
		assert.Greater(t, score, 0.5)
	})

	t.Run("empty text is rejected", func(t *testing.T) {
		_, _, err := c.Classify("   ")
		assert.Error(t, err)
	})
}

package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	t.Run("domain error reports its code", func(t *testing.T) {
		err := New(CodeValidation, "credit_limit must be non-negative")
		assert.Equal(t, CodeValidation, CodeOf(err))
	})

	t.Run("wrapped domain error is found through fmt wrapping", func(t *testing.T) {
		inner := New(CodeModelUnavailable, "model not loaded")
		err := fmt.Errorf("evaluate: %w", inner)
		assert.Equal(t, CodeModelUnavailable, CodeOf(err))
	})

	t.Run("plain error defaults to internal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	})
}

func TestWrap(t *testing.T) {
	cause := errors.New("open centseek_model.model: no such file")
	err := Wrap(cause, CodeModelUnavailable, "load model")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "load model", err.Message())
	assert.Contains(t, err.Error(), "no such file")
	assert.True(t, HasCode(err, CodeModelUnavailable))
}

package mlgo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrDimensionMismatch(t *testing.T) {
	err := &ErrDimensionMismatch{Expected: 4, Actual: 3}

	assert.Equal(t, "dimension mismatch: expected 4, got 3", err.Error())

	wrapped := fmt.Errorf("predict: %w", err)

	var dimErr *ErrDimensionMismatch
	require.ErrorAs(t, wrapped, &dimErr)
	assert.Equal(t, 4, dimErr.Expected)
	assert.Equal(t, 3, dimErr.Actual)
}

func TestErrNotFitted(t *testing.T) {
	wrapped := fmt.Errorf("score: %w", ErrNotFitted)

	assert.ErrorIs(t, wrapped, ErrNotFitted)
	assert.False(t, errors.Is(wrapped, errors.New("model is not fitted")))
}

package mlgo

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFitted is returned when a model is asked to predict or score
	// before a successful Fit.
	ErrNotFitted = errors.New("model is not fitted")
)

// ErrDimensionMismatch is a named error type for feature-width mismatch
// between a vector and the data it is compared against.
type ErrDimensionMismatch struct {
	Expected int // Expected number of features
	Actual   int // Actual number of features
}

// Error returns the error message for dimension mismatch.
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

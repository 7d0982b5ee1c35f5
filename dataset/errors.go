package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTestRatio is returned by TrainTestSplit when the ratio
	// falls outside the open interval (0, 1).
	ErrInvalidTestRatio = errors.New("test ratio must be in (0, 1)")

	// ErrLabelCountMismatch is returned by New when the feature matrix
	// and label vector have different lengths.
	ErrLabelCountMismatch = errors.New("feature and label counts differ")

	// ErrNegativeLabel is returned when a label is negative. Labels are
	// class ids and must be non-negative integers.
	ErrNegativeLabel = errors.New("negative label")

	// ErrUnsupportedExtension is returned by FromCSV for file names that
	// are neither .csv nor one of the recognized compressed variants.
	ErrUnsupportedExtension = errors.New("unsupported file extension")

	// ErrNoRows is returned by FromCSV when the input contains no data
	// rows after the optional header.
	ErrNoRows = errors.New("no data rows")

	// ErrLabelColumn is returned by FromCSV when the configured label
	// column does not exist in the input.
	ErrLabelColumn = errors.New("label column out of range")
)

// RowError reports a failed cell while loading delimited data. The
// whole load aborts on the first RowError; no partial Dataset is
// returned. Line and Column follow encoding/csv conventions: both are
// 1-based and Column is the byte offset of the field on its line.
type RowError struct {
	Line   int
	Column int
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row error at line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying cause, e.g. a strconv parse failure.
func (e *RowError) Unwrap() error {
	return e.Err
}

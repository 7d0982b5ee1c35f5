package dataset

import (
	"fmt"
	"math"

	"github.com/daniel-garciasoto/mlgo"
	"github.com/daniel-garciasoto/mlgo/util"
	"gonum.org/v1/gonum/stat"
)

// Default parameters for TrainTestSplit, matching the library's
// conventional 90/10 partition.
const (
	DefaultTestRatio = 0.1
	DefaultSeed      = int64(41)
)

// Dataset owns an n×d feature matrix and a parallel label vector of
// length n. Every row has exactly d entries and d is fixed once the
// Dataset is non-empty. Labels are non-negative class ids.
type Dataset struct {
	features [][]float64
	labels   []int
}

// New creates a Dataset from a feature matrix and a parallel label
// vector. The Dataset takes ownership of both slices without copying;
// callers that keep mutating them should pass copies or Clone the
// result. Ragged rows, mismatched lengths and negative labels are
// rejected.
func New(features [][]float64, labels []int) (*Dataset, error) {
	if len(features) != len(labels) {
		return nil, fmt.Errorf("%w: %d rows, %d labels", ErrLabelCountMismatch, len(features), len(labels))
	}

	for _, row := range features {
		if len(row) != len(features[0]) {
			return nil, &mlgo.ErrDimensionMismatch{Expected: len(features[0]), Actual: len(row)}
		}
	}

	for _, label := range labels {
		if label < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegativeLabel, label)
		}
	}

	return &Dataset{features: features, labels: labels}, nil
}

// Features returns the feature matrix. The returned slices are views
// into the Dataset's storage; treat them as read-only.
func (ds *Dataset) Features() [][]float64 {
	return ds.features
}

// Labels returns the label vector. The returned slice is a view into
// the Dataset's storage; treat it as read-only.
func (ds *Dataset) Labels() []int {
	return ds.labels
}

// Len returns the number of samples.
func (ds *Dataset) Len() int {
	return len(ds.features)
}

// NumFeatures returns the feature dimensionality, 0 for an empty
// Dataset.
func (ds *Dataset) NumFeatures() int {
	if len(ds.features) == 0 {
		return 0
	}
	return len(ds.features[0])
}

// Clone returns a deep copy sharing no storage with the receiver.
func (ds *Dataset) Clone() *Dataset {
	labels := make([]int, len(ds.labels))
	copy(labels, ds.labels)

	return &Dataset{
		features: copyMatrix(ds.features),
		labels:   labels,
	}
}

// TrainTestSplit partitions the Dataset into two new, independently
// owned Datasets. The test set receives floor(n*testRatio) samples,
// the training set the rest. Row selection comes from a seeded
// permutation, so the same seed always reproduces the same partition.
// A testRatio outside (0, 1) fails with ErrInvalidTestRatio; an empty
// Dataset splits into two empty Datasets without error.
func (ds *Dataset) TrainTestSplit(testRatio float64, seed int64) (*Dataset, *Dataset, error) {
	if math.IsNaN(testRatio) || testRatio <= 0 || testRatio >= 1 {
		return nil, nil, fmt.Errorf("%w: got %v", ErrInvalidTestRatio, testRatio)
	}

	n := ds.Len()
	if n == 0 {
		return &Dataset{}, &Dataset{}, nil
	}

	testSize := int(float64(n) * testRatio)
	trainSize := n - testSize

	perm := util.NewRNG(seed).Perm(n)

	train := ds.subset(perm[:trainSize])
	test := ds.subset(perm[trainSize:])

	return train, test, nil
}

// subset materializes a deep copy of the rows at the given indices.
func (ds *Dataset) subset(indices []int) *Dataset {
	features := make([][]float64, 0, len(indices))
	labels := make([]int, 0, len(indices))

	for _, i := range indices {
		row := make([]float64, len(ds.features[i]))
		copy(row, ds.features[i])

		features = append(features, row)
		labels = append(labels, ds.labels[i])
	}

	return &Dataset{features: features, labels: labels}
}

// Normalize rescales every feature column into [0, 1] in place using
// the column's min and max. Constant columns are left unchanged, so
// the operation never divides by zero or produces NaN/Inf. The scaling
// is destructive: neither the original values nor the min/max
// parameters are retained, so the same transform cannot later be
// applied to other data.
func (ds *Dataset) Normalize() {
	if ds.Len() == 0 {
		return
	}

	for col := 0; col < ds.NumFeatures(); col++ {
		minVal := ds.features[0][col]
		maxVal := ds.features[0][col]

		for _, row := range ds.features {
			if row[col] < minVal {
				minVal = row[col]
			}
			if row[col] > maxVal {
				maxVal = row[col]
			}
		}

		if maxVal <= minVal {
			continue
		}

		span := maxVal - minVal
		for _, row := range ds.features {
			row[col] = (row[col] - minVal) / span
		}
	}
}

// Standardize rescales every feature column in place to zero mean and
// unit sample standard deviation (Bessel-corrected, divisor n-1).
// Columns with zero standard deviation are left unchanged. Like
// Normalize, the operation is destructive and retains no parameters.
func (ds *Dataset) Standardize() {
	n := ds.Len()
	if n == 0 {
		return
	}

	column := make([]float64, n)

	for col := 0; col < ds.NumFeatures(); col++ {
		for i, row := range ds.features {
			column[i] = row[col]
		}

		mean, std := stat.MeanStdDev(column, nil)
		// A single sample has no sample deviation; stat returns NaN.
		if std == 0 || math.IsNaN(std) {
			continue
		}

		for _, row := range ds.features {
			row[col] = (row[col] - mean) / std
		}
	}
}

func copyMatrix(src [][]float64) [][]float64 {
	out := make([][]float64, len(src))
	for i, row := range src {
		r := make([]float64, len(row))
		copy(r, row)
		out[i] = r
	}
	return out
}

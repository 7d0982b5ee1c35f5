package distance

import (
	"errors"
	"fmt"
	"math"

	"github.com/daniel-garciasoto/mlgo"
)

// ErrUnknownKind is returned when an unknown metric kind is provided to New.
var ErrUnknownKind = errors.New("unknown metric kind")

// ErrInvalidOrder is returned when a Minkowski order below 1 is provided.
var ErrInvalidOrder = errors.New("minkowski order must be >= 1")

// DefaultMinkowskiOrder is the order used when New constructs a Minkowski
// metric without an explicit p.
const DefaultMinkowskiOrder = 2.0

// Metric computes the distance between two feature vectors.
// Implementations must be stateless or otherwise safe for concurrent use.
type Metric interface {
	// Distance computes the distance between a and b.
	// The vectors must have the same dimensionality.
	Distance(a, b []float64) (float64, error)

	// String returns the metric name.
	String() string
}

// Kind represents the type of distance metric to use for vector comparisons.
type Kind string

// String returns the kind name.
func (k Kind) String() string { return string(k) }

const (
	// KindEuclidean is the straight-line (L2) distance.
	KindEuclidean Kind = "euclidean"

	// KindManhattan is the sum of absolute coordinate differences (L1).
	KindManhattan Kind = "manhattan"

	// KindChebyshev is the maximum absolute coordinate difference.
	KindChebyshev Kind = "chebyshev"

	// KindMinkowski is the generalized L_p distance.
	KindMinkowski Kind = "minkowski"
)

// Singleton instances of the stateless metrics.
// These are safe for concurrent use across goroutines.
var (
	Euclidean Metric = euclidean{}
	Manhattan Metric = manhattan{}
	Chebyshev Metric = chebyshev{}
)

// New returns a Metric implementation for the specified kind.
// KindMinkowski uses DefaultMinkowskiOrder; use NewMinkowski for other
// orders. Returns ErrUnknownKind if the kind is not recognized.
func New(kind Kind) (Metric, error) {
	switch kind {
	case KindEuclidean:
		return Euclidean, nil
	case KindManhattan:
		return Manhattan, nil
	case KindChebyshev:
		return Chebyshev, nil
	case KindMinkowski:
		return NewMinkowski(DefaultMinkowskiOrder)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Func adapts a bare function to the Metric interface.
type Func func(a, b []float64) (float64, error)

// Distance implements Metric.
func (f Func) Distance(a, b []float64) (float64, error) {
	return f(a, b)
}

// String implements Metric.
func (f Func) String() string { return "custom" }

func checkDims(a, b []float64) error {
	if len(a) != len(b) {
		return &mlgo.ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}
	return nil
}

type euclidean struct{}

// Distance computes the Euclidean (L2) distance between two vectors.
// Formula: sqrt(sum((a[i] - b[i])^2))
func (euclidean) Distance(a, b []float64) (float64, error) {
	if err := checkDims(a, b); err != nil {
		return 0, err
	}

	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}

	return math.Sqrt(sum), nil
}

func (euclidean) String() string { return "euclidean" }

type manhattan struct{}

// Distance computes the Manhattan (L1) distance between two vectors.
// Formula: sum(|a[i] - b[i]|)
func (manhattan) Distance(a, b []float64) (float64, error) {
	if err := checkDims(a, b); err != nil {
		return 0, err
	}

	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}

	return sum, nil
}

func (manhattan) String() string { return "manhattan" }

type chebyshev struct{}

// Distance computes the Chebyshev distance between two vectors.
// Formula: max(|a[i] - b[i]|)
func (chebyshev) Distance(a, b []float64) (float64, error) {
	if err := checkDims(a, b); err != nil {
		return 0, err
	}

	var max float64
	for i := range a {
		if diff := math.Abs(a[i] - b[i]); diff > max {
			max = diff
		}
	}

	return max, nil
}

func (chebyshev) String() string { return "chebyshev" }

// Minkowski is the generalized L_p distance of order p.
// Construct instances with NewMinkowski.
type Minkowski struct {
	p float64
}

// NewMinkowski creates a Minkowski metric of order p.
// Returns ErrInvalidOrder when p < 1 (the triangle inequality does not
// hold below that).
func NewMinkowski(p float64) (*Minkowski, error) {
	// NaN fails every comparison, so check the valid range directly.
	if !(p >= 1) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidOrder, p)
	}

	return &Minkowski{p: p}, nil
}

// Order returns the metric order p.
func (m *Minkowski) Order() float64 { return m.p }

// Distance computes the Minkowski distance of order p between two vectors.
// Formula: (sum(|a[i] - b[i]|^p))^(1/p)
func (m *Minkowski) Distance(a, b []float64) (float64, error) {
	if err := checkDims(a, b); err != nil {
		return 0, err
	}

	var sum float64
	for i := range a {
		sum += math.Pow(math.Abs(a[i]-b[i]), m.p)
	}

	return math.Pow(sum, 1/m.p), nil
}

func (m *Minkowski) String() string {
	return fmt.Sprintf("minkowski(p=%v)", m.p)
}

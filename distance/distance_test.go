package distance

import (
	"errors"
	"math"
	"testing"

	"github.com/daniel-garciasoto/mlgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, math.Sqrt(27)},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, math.Sqrt(8)}, // (1 - -1)^2 + (-1 - 1)^2 = 4 + 4 = 8
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Euclidean.Distance(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestManhattan(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 9},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 4},
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Manhattan.Distance(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestChebyshev(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 9, 6}, 7},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 2},
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Chebyshev.Distance(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestMinkowski(t *testing.T) {
	t.Run("InvalidOrder", func(t *testing.T) {
		for _, p := range []float64{0.5, 0, -1, math.NaN()} {
			_, err := NewMinkowski(p)
			assert.ErrorIs(t, err, ErrInvalidOrder, "p=%v", p)
		}
	})

	t.Run("Order", func(t *testing.T) {
		m, err := NewMinkowski(3)
		require.NoError(t, err)
		assert.Equal(t, 3.0, m.Order())
		assert.Equal(t, "minkowski(p=3)", m.String())
	})

	t.Run("CubeRoot", func(t *testing.T) {
		m, err := NewMinkowski(3)
		require.NoError(t, err)

		got, err := m.Distance([]float64{0, 0}, []float64{1, 1})
		require.NoError(t, err)
		assert.InDelta(t, math.Cbrt(2), got, 1e-9)
	})

	t.Run("OrderOneMatchesManhattan", func(t *testing.T) {
		m, err := NewMinkowski(1)
		require.NoError(t, err)

		a := []float64{0.3, -1.2, 4.5, 0}
		b := []float64{2.1, 0.7, -3.3, 1.1}

		want, err := Manhattan.Distance(a, b)
		require.NoError(t, err)
		got, err := m.Distance(a, b)
		require.NoError(t, err)

		assert.InDelta(t, want, got, 1e-9)
	})

	t.Run("OrderTwoMatchesEuclidean", func(t *testing.T) {
		m, err := NewMinkowski(2)
		require.NoError(t, err)

		a := []float64{0.3, -1.2, 4.5, 0}
		b := []float64{2.1, 0.7, -3.3, 1.1}

		want, err := Euclidean.Distance(a, b)
		require.NoError(t, err)
		got, err := m.Distance(a, b)
		require.NoError(t, err)

		assert.InDelta(t, want, got, 1e-9)
	})
}

func TestMetricProperties(t *testing.T) {
	mink, err := NewMinkowski(3)
	require.NoError(t, err)

	metrics := []Metric{Euclidean, Manhattan, Chebyshev, mink}

	a := []float64{1.5, -2.25, 3.75}
	b := []float64{-0.5, 4.25, 1.25}

	for _, m := range metrics {
		t.Run(m.String(), func(t *testing.T) {
			// Identity: d(v, v) == 0.
			self, err := m.Distance(a, a)
			require.NoError(t, err)
			assert.Zero(t, self)

			// Symmetry: d(a, b) == d(b, a).
			ab, err := m.Distance(a, b)
			require.NoError(t, err)
			ba, err := m.Distance(b, a)
			require.NoError(t, err)
			assert.InDelta(t, ab, ba, 1e-9)

			// Non-negativity.
			assert.GreaterOrEqual(t, ab, 0.0)
		})
	}
}

func TestDimensionMismatch(t *testing.T) {
	mink, err := NewMinkowski(2)
	require.NoError(t, err)

	metrics := []Metric{Euclidean, Manhattan, Chebyshev, mink}

	for _, m := range metrics {
		t.Run(m.String(), func(t *testing.T) {
			_, err := m.Distance([]float64{1, 2, 3}, []float64{1, 2})

			var dm *mlgo.ErrDimensionMismatch
			require.ErrorAs(t, err, &dm)
			assert.Equal(t, 3, dm.Expected)
			assert.Equal(t, 2, dm.Actual)
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindEuclidean, "euclidean"},
		{KindManhattan, "manhattan"},
		{KindChebyshev, "chebyshev"},
		{KindMinkowski, "minkowski(p=2)"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			m, err := New(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.String())
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		_, err := New(Kind("cosine"))
		assert.ErrorIs(t, err, ErrUnknownKind)
	})
}

func TestFunc(t *testing.T) {
	calls := 0
	m := Func(func(a, b []float64) (float64, error) {
		calls++
		return 42, nil
	})

	got, err := m.Distance(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "custom", m.String())

	failing := Func(func(a, b []float64) (float64, error) {
		return 0, errors.New("boom")
	})
	_, err = failing.Distance(nil, nil)
	assert.Error(t, err)
}

package metrics

import (
	"testing"

	"github.com/daniel-garciasoto/mlgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMSE(t *testing.T) {
	yTrue := []float64{100, 200, 300}
	yPred := []float64{110, 190, 310}

	mse, err := MSE(yTrue, yPred)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, mse, 1e-12)

	t.Run("Perfect", func(t *testing.T) {
		mse, err := MSE(yTrue, yTrue)
		require.NoError(t, err)
		assert.Equal(t, 0.0, mse)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := MSE(yTrue, yPred[:2])

		var dimErr *mlgo.ErrDimensionMismatch
		assert.ErrorAs(t, err, &dimErr)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := MSE(nil, nil)
		assert.ErrorIs(t, err, ErrNoSamples)
	})
}

func TestRMSE(t *testing.T) {
	rmse, err := RMSE([]float64{100, 200, 300}, []float64{110, 190, 310})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, rmse, 1e-12)
}

func TestMAE(t *testing.T) {
	mae, err := MAE([]float64{100, 200, 300}, []float64{110, 190, 310})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, mae, 1e-12)

	t.Run("Empty", func(t *testing.T) {
		_, err := MAE(nil, nil)
		assert.ErrorIs(t, err, ErrNoSamples)
	})
}

func TestR2(t *testing.T) {
	yTrue := []float64{1, 2, 3, 4, 5}

	t.Run("PerfectFit", func(t *testing.T) {
		r2, err := R2(yTrue, yTrue)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, r2, 1e-12)
	})

	t.Run("MeanBaseline", func(t *testing.T) {
		r2, err := R2(yTrue, []float64{3, 3, 3, 3, 3})
		require.NoError(t, err)
		assert.InDelta(t, 0.0, r2, 1e-12)
	})

	t.Run("WorseThanMean", func(t *testing.T) {
		r2, err := R2(yTrue, []float64{5, 4, 3, 2, 1})
		require.NoError(t, err)
		assert.Less(t, r2, 0.0)
	})

	t.Run("ZeroVariance", func(t *testing.T) {
		_, err := R2([]float64{7, 7, 7}, []float64{1, 2, 3})
		assert.ErrorIs(t, err, ErrZeroVariance)
	})
}

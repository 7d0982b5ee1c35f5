package metrics

import (
	"errors"
	"math"

	"github.com/daniel-garciasoto/mlgo"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrNoSamples is returned when a metric receives empty input.
	ErrNoSamples = errors.New("no samples")

	// ErrZeroVariance is returned by R2 when the true values are all
	// identical, leaving the score undefined.
	ErrZeroVariance = errors.New("zero variance in true values")
)

// MSE returns the mean squared error between true and predicted
// values. Lower is better; 0 means perfect predictions.
func MSE(yTrue, yPred []float64) (float64, error) {
	if err := checkPaired(len(yTrue), len(yPred)); err != nil {
		return 0, err
	}

	sum := 0.0
	for i := range yTrue {
		diff := yTrue[i] - yPred[i]
		sum += diff * diff
	}

	return sum / float64(len(yTrue)), nil
}

// RMSE returns the root mean squared error, in the same units as the
// target variable.
func RMSE(yTrue, yPred []float64) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(mse), nil
}

// MAE returns the mean absolute error. Less sensitive to outliers
// than MSE.
func MAE(yTrue, yPred []float64) (float64, error) {
	if err := checkPaired(len(yTrue), len(yPred)); err != nil {
		return 0, err
	}

	sum := 0.0
	for i := range yTrue {
		sum += math.Abs(yTrue[i] - yPred[i])
	}

	return sum / float64(len(yTrue)), nil
}

// R2 returns the coefficient of determination: 1 for a perfect fit, 0
// for a model no better than predicting the mean, negative for worse.
func R2(yTrue, yPred []float64) (float64, error) {
	if err := checkPaired(len(yTrue), len(yPred)); err != nil {
		return 0, err
	}

	mean := stat.Mean(yTrue, nil)

	ssRes := 0.0
	ssTot := 0.0
	for i := range yTrue {
		diff := yTrue[i] - yPred[i]
		ssRes += diff * diff

		dev := yTrue[i] - mean
		ssTot += dev * dev
	}

	if ssTot == 0 {
		return 0, ErrZeroVariance
	}

	return 1 - ssRes/ssTot, nil
}

func checkPaired(nTrue, nPred int) error {
	if nTrue != nPred {
		return &mlgo.ErrDimensionMismatch{Expected: nTrue, Actual: nPred}
	}
	if nTrue == 0 {
		return ErrNoSamples
	}
	return nil
}

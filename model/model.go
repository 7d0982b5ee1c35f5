package model

import (
	"context"

	"github.com/daniel-garciasoto/mlgo/dataset"
)

// Classifier is a trainable model producing integer class labels.
type Classifier interface {
	// Fit trains the model on ds.
	Fit(ctx context.Context, ds *dataset.Dataset) error

	// Predict returns the predicted label for a single sample.
	Predict(ctx context.Context, sample []float64) (int, error)

	// PredictBatch returns one predicted label per input row, in input order.
	PredictBatch(ctx context.Context, samples [][]float64) ([]int, error)

	// Score returns the fraction of rows in ds the model labels correctly.
	Score(ctx context.Context, ds *dataset.Dataset) (float64, error)
}

// Regressor is a trainable model producing continuous targets.
type Regressor interface {
	// Fit trains the model on the feature matrix x and targets y.
	Fit(ctx context.Context, x [][]float64, y []float64) error

	// Predict returns the predicted target for a single sample.
	Predict(ctx context.Context, sample []float64) (float64, error)

	// PredictBatch returns one predicted target per input row, in input order.
	PredictBatch(ctx context.Context, x [][]float64) ([]float64, error)

	// Score returns the coefficient of determination on x and y.
	Score(ctx context.Context, x [][]float64, y []float64) (float64, error)
}

// LinearModel is implemented by linear regressors that expose their
// learned parameters.
type LinearModel interface {
	// Weights returns the learned weights (coefficients).
	Weights() []float64

	// Intercept returns the learned intercept.
	Intercept() float64
}

package linear

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/daniel-garciasoto/mlgo"
	"github.com/daniel-garciasoto/mlgo/metrics"
	"github.com/daniel-garciasoto/mlgo/model"
	"gonum.org/v1/gonum/mat"
)

// Solver selects the fitting algorithm.
type Solver string

const (
	// SolverNormal solves the normal equations by QR least squares.
	// Exact and fast for small feature counts.
	SolverNormal Solver = "normal"

	// SolverGradientDescent runs batch gradient descent on the MSE
	// loss. Scales to wide data but needs scaled features and a tuned
	// learning rate.
	SolverGradientDescent Solver = "gradient"
)

var (
	// ErrInvalidLearningRate is returned by New for a non-positive or
	// non-finite learning rate.
	ErrInvalidLearningRate = errors.New("learning rate must be positive")

	// ErrInvalidEpochs is returned by New when the epoch count is less
	// than 1.
	ErrInvalidEpochs = errors.New("epochs must be >= 1")

	// ErrUnknownSolver is returned by New for an unrecognized solver.
	ErrUnknownSolver = errors.New("unknown solver")

	// ErrEmptyTrainingSet is returned by Fit when no samples are given.
	ErrEmptyTrainingSet = errors.New("empty training set")

	// ErrTargetCountMismatch is returned by Fit and Score when the
	// feature matrix and target vector have different lengths.
	ErrTargetCountMismatch = errors.New("feature and target counts differ")

	// ErrInsufficientSamples is returned by the normal-equation solver
	// when there are fewer samples than unknowns.
	ErrInsufficientSamples = errors.New("need at least one more sample than features")
)

// Compile-time checks to ensure Regression satisfies the model contracts.
var _ model.Regressor = (*Regression)(nil)
var _ model.LinearModel = (*Regression)(nil)

// Options contains configuration options for the regression model.
type Options struct {
	// Solver selects the fitting algorithm.
	Solver Solver

	// LearningRate is the gradient-descent step size.
	LearningRate float64

	// Epochs is the number of gradient-descent passes over the data.
	Epochs int

	// Logger is used for logging model operations.
	Logger *mlgo.Logger

	// MetricsCollector records operational metrics.
	MetricsCollector mlgo.MetricsCollector
}

// DefaultOptions returns the default regression configuration.
func DefaultOptions() Options {
	return Options{
		Solver:           SolverNormal,
		LearningRate:     0.01,
		Epochs:           1000,
		Logger:           mlgo.NoopLogger(),
		MetricsCollector: mlgo.NoopMetricsCollector{},
	}
}

// WithSolver selects the fitting algorithm.
func WithSolver(solver Solver) func(o *Options) {
	return func(o *Options) {
		o.Solver = solver
	}
}

// WithLearningRate sets the gradient-descent step size.
func WithLearningRate(rate float64) func(o *Options) {
	return func(o *Options) {
		o.LearningRate = rate
	}
}

// WithEpochs sets the number of gradient-descent passes.
func WithEpochs(epochs int) func(o *Options) {
	return func(o *Options) {
		o.Epochs = epochs
	}
}

// WithLogger sets the logger.
func WithLogger(logger *mlgo.Logger) func(o *Options) {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithMetricsCollector sets the metrics collector.
func WithMetricsCollector(collector mlgo.MetricsCollector) func(o *Options) {
	return func(o *Options) {
		o.MetricsCollector = collector
	}
}

// Regression fits the linear model y = intercept + w·x by ordinary
// least squares or batch gradient descent.
type Regression struct {
	solver  Solver
	alpha   float64
	epochs  int
	logger  *mlgo.Logger
	metrics mlgo.MetricsCollector

	weights   []float64
	intercept float64
	fitted    bool
}

// New creates a linear regression model.
func New(optFns ...func(o *Options)) (*Regression, error) {
	opts := DefaultOptions()

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.LearningRate <= 0 || math.IsNaN(opts.LearningRate) || math.IsInf(opts.LearningRate, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidLearningRate, opts.LearningRate)
	}

	if opts.Epochs < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidEpochs, opts.Epochs)
	}

	switch opts.Solver {
	case SolverNormal, SolverGradientDescent:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, opts.Solver)
	}

	return &Regression{
		solver:  opts.Solver,
		alpha:   opts.LearningRate,
		epochs:  opts.Epochs,
		logger:  opts.Logger.WithModel("linear"),
		metrics: opts.MetricsCollector,
	}, nil
}

// Weights returns the fitted coefficients, one per feature. Nil before
// Fit.
func (r *Regression) Weights() []float64 {
	return r.weights
}

// Intercept returns the fitted bias term.
func (r *Regression) Intercept() float64 {
	return r.intercept
}

// Fit trains the model on the given feature matrix and target vector
// using the configured solver. Refitting fully replaces the previous
// parameters.
func (r *Regression) Fit(ctx context.Context, x [][]float64, y []float64) error {
	start := time.Now()

	err := r.fit(ctx, x, y)

	r.metrics.RecordFit(time.Since(start), err)

	features := 0
	if len(x) > 0 {
		features = len(x[0])
	}
	r.logger.LogFit(ctx, len(x), features, err)

	return err
}

func (r *Regression) fit(ctx context.Context, x [][]float64, y []float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(x) == 0 {
		return ErrEmptyTrainingSet
	}
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d rows, %d targets", ErrTargetCountMismatch, len(x), len(y))
	}

	dim := len(x[0])
	for _, row := range x {
		if len(row) != dim {
			return &mlgo.ErrDimensionMismatch{Expected: dim, Actual: len(row)}
		}
	}

	var err error
	switch r.solver {
	case SolverGradientDescent:
		err = r.fitGradientDescent(ctx, x, y)
	default:
		err = r.fitNormalEquation(x, y)
	}
	if err != nil {
		return err
	}

	r.fitted = true

	return nil
}

// fitNormalEquation solves min ||Xw - y|| directly via the QR
// factorization of the design matrix (features with a leading ones
// column for the intercept).
func (r *Regression) fitNormalEquation(x [][]float64, y []float64) error {
	rows := len(x)
	cols := len(x[0]) + 1

	if rows < cols {
		return fmt.Errorf("%w: %d samples for %d features", ErrInsufficientSamples, rows, cols-1)
	}

	a := mat.NewDense(rows, cols, nil)
	for i, row := range x {
		a.Set(i, 0, 1)
		for j, v := range row {
			a.Set(i, j+1, v)
		}
	}

	var qr mat.QR
	qr.Factorize(a)

	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, mat.NewVecDense(rows, y)); err != nil {
		return fmt.Errorf("normal equation: %w", err)
	}

	r.intercept = sol.AtVec(0)
	r.weights = make([]float64, cols-1)
	for j := range r.weights {
		r.weights[j] = sol.AtVec(j + 1)
	}

	return nil
}

// fitGradientDescent runs full-batch gradient descent on the MSE loss,
// starting from zero weights.
func (r *Regression) fitGradientDescent(ctx context.Context, x [][]float64, y []float64) error {
	n := float64(len(x))
	dim := len(x[0])

	w := make([]float64, dim)
	b := 0.0

	gradW := make([]float64, dim)

	for epoch := 0; epoch < r.epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		for j := range gradW {
			gradW[j] = 0
		}
		gradB := 0.0

		for i, row := range x {
			pred := b
			for j, v := range row {
				pred += w[j] * v
			}

			residual := pred - y[i]
			for j, v := range row {
				gradW[j] += residual * v
			}
			gradB += residual
		}

		for j := range w {
			w[j] -= r.alpha * gradW[j] / n
		}
		b -= r.alpha * gradB / n
	}

	r.weights = w
	r.intercept = b

	return nil
}

// Predict returns the model output for a single sample.
func (r *Regression) Predict(ctx context.Context, sample []float64) (float64, error) {
	start := time.Now()

	value, err := r.predict(ctx, sample)

	r.metrics.RecordPredict(time.Since(start), err)
	r.logger.LogPredict(ctx, err)

	return value, err
}

func (r *Regression) predict(ctx context.Context, sample []float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if !r.fitted {
		return 0, mlgo.ErrNotFitted
	}

	if len(sample) != len(r.weights) {
		return 0, &mlgo.ErrDimensionMismatch{Expected: len(r.weights), Actual: len(sample)}
	}

	value := r.intercept
	for j, v := range sample {
		value += r.weights[j] * v
	}

	return value, nil
}

// PredictBatch returns model outputs for every sample, preserving
// input order.
func (r *Regression) PredictBatch(ctx context.Context, samples [][]float64) ([]float64, error) {
	start := time.Now()

	values, err := r.predictBatch(ctx, samples)

	r.metrics.RecordBatchPredict(len(samples), time.Since(start), err)
	r.logger.LogBatchPredict(ctx, len(samples), err)

	return values, err
}

func (r *Regression) predictBatch(ctx context.Context, samples [][]float64) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !r.fitted {
		return nil, mlgo.ErrNotFitted
	}

	values := make([]float64, len(samples))
	for i, sample := range samples {
		value, err := r.predict(ctx, sample)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}

	return values, nil
}

// Score returns the coefficient of determination R² of the model on
// the given data: 1 is a perfect fit, 0 matches always predicting the
// mean, negative is worse than that baseline.
func (r *Regression) Score(ctx context.Context, x [][]float64, y []float64) (float64, error) {
	start := time.Now()

	score, err := r.score(ctx, x, y)

	r.metrics.RecordScore(time.Since(start), err)
	r.logger.LogScore(ctx, len(x), score, err)

	return score, err
}

func (r *Regression) score(ctx context.Context, x [][]float64, y []float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if !r.fitted {
		return 0, mlgo.ErrNotFitted
	}

	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: %d rows, %d targets", ErrTargetCountMismatch, len(x), len(y))
	}

	predictions, err := r.predictBatch(ctx, x)
	if err != nil {
		return 0, err
	}

	return metrics.R2(y, predictions)
}

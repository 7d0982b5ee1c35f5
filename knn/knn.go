package knn

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/daniel-garciasoto/mlgo"
	"github.com/daniel-garciasoto/mlgo/dataset"
	"github.com/daniel-garciasoto/mlgo/distance"
	"github.com/daniel-garciasoto/mlgo/internal/queue"
	"github.com/daniel-garciasoto/mlgo/model"
	"golang.org/x/sync/errgroup"
)

// DefaultK is the conventional neighbor count for callers without a
// tuned value. Odd values avoid ties in binary classification.
const DefaultK = 3

var (
	// ErrInvalidK is returned by New when k is less than 1.
	ErrInvalidK = errors.New("k must be >= 1")

	// ErrEmptyTrainingSet is returned by Fit for a nil or empty dataset.
	ErrEmptyTrainingSet = errors.New("empty training set")
)

// Compile-time check to ensure Classifier satisfies the model contract.
var _ model.Classifier = (*Classifier)(nil)

// Neighbor is one training row returned by a nearest-neighbor query.
type Neighbor struct {
	// Index is the row's position in the training set.
	Index int

	// Distance is the metric distance from the query sample.
	Distance float64
}

// Options contains configuration options for the classifier.
type Options struct {
	// Metric is the distance strategy consulted for every query.
	Metric distance.Metric

	// Workers bounds the goroutines used by PredictBatch and Score.
	Workers int

	// Logger is used for logging classifier operations.
	Logger *mlgo.Logger

	// MetricsCollector records operational metrics.
	MetricsCollector mlgo.MetricsCollector
}

// DefaultOptions returns the default classifier configuration.
func DefaultOptions() Options {
	return Options{
		Metric:           distance.Euclidean,
		Workers:          runtime.GOMAXPROCS(0),
		Logger:           mlgo.NoopLogger(),
		MetricsCollector: mlgo.NoopMetricsCollector{},
	}
}

// WithMetric sets the distance metric.
func WithMetric(metric distance.Metric) func(o *Options) {
	return func(o *Options) {
		o.Metric = metric
	}
}

// WithWorkers bounds the parallelism of batch prediction.
func WithWorkers(workers int) func(o *Options) {
	return func(o *Options) {
		o.Workers = workers
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

// Classifier is a k-nearest-neighbor classifier. It is a lazy learner:
// Fit only stores the training data and every prediction scans it,
// computing the distance from the query to each stored row.
//
// A Classifier is safe for concurrent queries after Fit; Fit itself
// must not run concurrently with queries.
type Classifier struct {
	k       int
	metric  distance.Metric
	workers int
	logger  *mlgo.Logger
	metrics mlgo.MetricsCollector

	xTrain [][]float64
	yTrain []int
}

// New creates a k-nearest-neighbor classifier. k is the number of
// neighbors consulted per prediction and must be at least 1.
func New(k int, optFns ...func(o *Options)) (*Classifier, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}

	opts := DefaultOptions()

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Workers < 1 {
		opts.Workers = 1
	}

	return &Classifier{
		k:       k,
		metric:  opts.Metric,
		workers: opts.Workers,
		logger:  opts.Logger.WithModel("knn").WithK(k),
		metrics: opts.MetricsCollector,
	}, nil
}

// K returns the configured neighbor count.
func (c *Classifier) K() int {
	return c.k
}

// Metric returns the configured distance metric.
func (c *Classifier) Metric() distance.Metric {
	return c.metric
}

// Fit stores an owned deep copy of the training data. Refitting fully
// replaces the previous training set; nothing is merged.
func (c *Classifier) Fit(ctx context.Context, ds *dataset.Dataset) error {
	start := time.Now()

	err := c.fit(ctx, ds)

	c.metrics.RecordFit(time.Since(start), err)

	samples, features := 0, 0
	if ds != nil {
		samples, features = ds.Len(), ds.NumFeatures()
	}
	c.logger.LogFit(ctx, samples, features, err)

	return err
}

func (c *Classifier) fit(ctx context.Context, ds *dataset.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if ds == nil || ds.Len() == 0 {
		return ErrEmptyTrainingSet
	}

	owned := ds.Clone()
	c.xTrain = owned.Features()
	c.yTrain = owned.Labels()

	return nil
}

// Neighbors returns the min(k, n) training rows nearest to sample,
// ordered ascending by distance. Rows at equal distance are ordered by
// ascending training index, so results are fully deterministic. The
// scan keeps only the current best candidates in a bounded heap
// instead of sorting all n distances.
func (c *Classifier) Neighbors(ctx context.Context, sample []float64) ([]Neighbor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(c.xTrain) == 0 {
		return nil, mlgo.ErrNotFitted
	}

	if len(sample) != len(c.xTrain[0]) {
		return nil, &mlgo.ErrDimensionMismatch{Expected: len(c.xTrain[0]), Actual: len(sample)}
	}

	actualK := c.k
	if actualK > len(c.xTrain) {
		actualK = len(c.xTrain)
	}

	top := queue.NewMax(actualK)
	heap.Init(top)

	for i, row := range c.xTrain {
		d, err := c.metric.Distance(sample, row)
		if err != nil {
			return nil, err
		}

		cand := queue.PriorityQueueItem{Index: i, Distance: d}

		if top.Len() < actualK {
			heap.Push(top, cand)
			continue
		}

		if worst, ok := top.Top(); ok && cand.Before(worst) {
			heap.Pop(top)
			heap.Push(top, cand)
		}
	}

	neighbors := make([]Neighbor, top.Len())
	for i := top.Len() - 1; i >= 0; i-- {
		item := heap.Pop(top).(queue.PriorityQueueItem)
		neighbors[i] = Neighbor{Index: item.Index, Distance: item.Distance}
	}

	return neighbors, nil
}

// majorityVote returns the most frequent label among the neighbors.
// Ties go to the smallest label value.
func (c *Classifier) majorityVote(neighbors []Neighbor) int {
	counts := make(map[int]int, len(neighbors))
	for _, nb := range neighbors {
		counts[c.yTrain[nb.Index]]++
	}

	best := -1
	bestCount := 0

	for label, count := range counts {
		if count > bestCount || (count == bestCount && label < best) {
			best = label
			bestCount = count
		}
	}

	return best
}

// Predict classifies a single sample by majority vote among its
// nearest neighbors.
func (c *Classifier) Predict(ctx context.Context, sample []float64) (int, error) {
	start := time.Now()

	label, err := c.predict(ctx, sample)

	c.metrics.RecordPredict(time.Since(start), err)
	c.logger.LogPredict(ctx, err)

	return label, err
}

func (c *Classifier) predict(ctx context.Context, sample []float64) (int, error) {
	neighbors, err := c.Neighbors(ctx, sample)
	if err != nil {
		return 0, err
	}

	return c.majorityVote(neighbors), nil
}

// PredictBatch classifies every sample independently and preserves
// input order in the output. Rows are predicted in parallel, bounded
// by the configured worker count; the first failure cancels the rest.
func (c *Classifier) PredictBatch(ctx context.Context, samples [][]float64) ([]int, error) {
	start := time.Now()

	labels, err := c.predictBatch(ctx, samples)

	c.metrics.RecordBatchPredict(len(samples), time.Since(start), err)
	c.logger.LogBatchPredict(ctx, len(samples), err)

	return labels, err
}

func (c *Classifier) predictBatch(ctx context.Context, samples [][]float64) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(c.xTrain) == 0 {
		return nil, mlgo.ErrNotFitted
	}

	if len(samples) == 0 {
		return []int{}, nil
	}

	labels := make([]int, len(samples))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, sample := range samples {
		g.Go(func() error {
			label, err := c.predict(gctx, sample)
			if err != nil {
				return err
			}

			labels[i] = label

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return labels, nil
}

// Score predicts every row of the test set and returns the fraction
// predicted correctly, in [0, 1]. Predictions are compared against the
// test set's own labels aligned by index. An empty test set scores 0.0
// without error.
func (c *Classifier) Score(ctx context.Context, ds *dataset.Dataset) (float64, error) {
	start := time.Now()

	score, samples, err := c.score(ctx, ds)

	c.metrics.RecordScore(time.Since(start), err)
	c.logger.LogScore(ctx, samples, score, err)

	return score, err
}

func (c *Classifier) score(ctx context.Context, ds *dataset.Dataset) (float64, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	if len(c.xTrain) == 0 {
		return 0, 0, mlgo.ErrNotFitted
	}

	if ds == nil || ds.Len() == 0 {
		return 0, 0, nil
	}

	if ds.NumFeatures() != len(c.xTrain[0]) {
		return 0, ds.Len(), &mlgo.ErrDimensionMismatch{Expected: len(c.xTrain[0]), Actual: ds.NumFeatures()}
	}

	predictions, err := c.predictBatch(ctx, ds.Features())
	if err != nil {
		return 0, ds.Len(), err
	}

	truth := ds.Labels()
	correct := 0
	for i, label := range predictions {
		if label == truth[i] {
			correct++
		}
	}

	return float64(correct) / float64(ds.Len()), ds.Len(), nil
}

package mlgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    predictCounter   prometheus.Counter
//	    predictHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordPredict(duration time.Duration, err error) {
//	    p.predictCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordFit is called after each fit operation.
	// duration is the total time taken, err is nil if successful.
	RecordFit(duration time.Duration, err error)

	// RecordPredict is called after each single prediction.
	RecordPredict(duration time.Duration, err error)

	// RecordBatchPredict is called after each batch prediction.
	// count is the number of samples attempted, duration is the total
	// time taken.
	RecordBatchPredict(count int, duration time.Duration, err error)

	// RecordScore is called after each scoring pass.
	RecordScore(duration time.Duration, err error)

	// RecordLoad is called after each dataset load.
	RecordLoad(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(time.Duration, error)               {}
func (NoopMetricsCollector) RecordPredict(time.Duration, error)           {}
func (NoopMetricsCollector) RecordBatchPredict(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordScore(time.Duration, error)             {}
func (NoopMetricsCollector) RecordLoad(time.Duration, error)              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FitCount           atomic.Int64
	FitErrors          atomic.Int64
	FitTotalNanos      atomic.Int64
	PredictCount       atomic.Int64
	PredictErrors      atomic.Int64
	PredictTotalNanos  atomic.Int64
	BatchPredictCount  atomic.Int64
	BatchPredictItems  atomic.Int64
	BatchPredictErrors atomic.Int64
	ScoreCount         atomic.Int64
	ScoreErrors        atomic.Int64
	LoadCount          atomic.Int64
	LoadErrors         atomic.Int64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitErrors.Add(1)
	}
}

// RecordPredict implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPredict(duration time.Duration, err error) {
	b.PredictCount.Add(1)
	b.PredictTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PredictErrors.Add(1)
	}
}

// RecordBatchPredict implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchPredict(count int, duration time.Duration, err error) {
	b.BatchPredictCount.Add(1)
	b.BatchPredictItems.Add(int64(count))
	if err != nil {
		b.BatchPredictErrors.Add(1)
	}
}

// RecordScore implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScore(duration time.Duration, err error) {
	b.ScoreCount.Add(1)
	if err != nil {
		b.ScoreErrors.Add(1)
	}
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(duration time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FitCount:           b.FitCount.Load(),
		FitErrors:          b.FitErrors.Load(),
		FitAvgNanos:        b.getAvgFitNanos(),
		PredictCount:       b.PredictCount.Load(),
		PredictErrors:      b.PredictErrors.Load(),
		PredictAvgNanos:    b.getAvgPredictNanos(),
		BatchPredictCount:  b.BatchPredictCount.Load(),
		BatchPredictItems:  b.BatchPredictItems.Load(),
		BatchPredictErrors: b.BatchPredictErrors.Load(),
		ScoreCount:         b.ScoreCount.Load(),
		ScoreErrors:        b.ScoreErrors.Load(),
		LoadCount:          b.LoadCount.Load(),
		LoadErrors:         b.LoadErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgFitNanos() int64 {
	count := b.FitCount.Load()
	if count == 0 {
		return 0
	}
	return b.FitTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgPredictNanos() int64 {
	count := b.PredictCount.Load()
	if count == 0 {
		return 0
	}
	return b.PredictTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FitCount           int64
	FitErrors          int64
	FitAvgNanos        int64
	PredictCount       int64
	PredictErrors      int64
	PredictAvgNanos    int64
	BatchPredictCount  int64
	BatchPredictItems  int64
	BatchPredictErrors int64
	ScoreCount         int64
	ScoreErrors        int64
	LoadCount          int64
	LoadErrors         int64
}

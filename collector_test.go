package mlgo

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Compile-time checks that both collectors satisfy the interface.
var (
	_ MetricsCollector = NoopMetricsCollector{}
	_ MetricsCollector = (*BasicMetricsCollector)(nil)
)

func TestBasicMetricsCollector(t *testing.T) {
	collector := &BasicMetricsCollector{}
	errFailed := errors.New("failed")

	collector.RecordFit(100*time.Millisecond, nil)
	collector.RecordFit(200*time.Millisecond, errFailed)

	collector.RecordPredict(10*time.Millisecond, nil)
	collector.RecordPredict(30*time.Millisecond, nil)

	collector.RecordBatchPredict(64, 50*time.Millisecond, nil)
	collector.RecordBatchPredict(16, 5*time.Millisecond, errFailed)

	collector.RecordScore(20*time.Millisecond, nil)
	collector.RecordLoad(40*time.Millisecond, errFailed)

	stats := collector.GetStats()

	assert.Equal(t, int64(2), stats.FitCount)
	assert.Equal(t, int64(1), stats.FitErrors)
	assert.Equal(t, (150 * time.Millisecond).Nanoseconds(), stats.FitAvgNanos)

	assert.Equal(t, int64(2), stats.PredictCount)
	assert.Equal(t, int64(0), stats.PredictErrors)
	assert.Equal(t, (20 * time.Millisecond).Nanoseconds(), stats.PredictAvgNanos)

	assert.Equal(t, int64(2), stats.BatchPredictCount)
	assert.Equal(t, int64(80), stats.BatchPredictItems)
	assert.Equal(t, int64(1), stats.BatchPredictErrors)

	assert.Equal(t, int64(1), stats.ScoreCount)
	assert.Equal(t, int64(0), stats.ScoreErrors)

	assert.Equal(t, int64(1), stats.LoadCount)
	assert.Equal(t, int64(1), stats.LoadErrors)
}

func TestBasicMetricsCollectorEmpty(t *testing.T) {
	collector := &BasicMetricsCollector{}

	stats := collector.GetStats()

	assert.Equal(t, int64(0), stats.FitCount)
	assert.Equal(t, int64(0), stats.FitAvgNanos)
	assert.Equal(t, int64(0), stats.PredictAvgNanos)
}

func TestBasicMetricsCollectorConcurrent(t *testing.T) {
	collector := &BasicMetricsCollector{}

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 1000; j++ {
				collector.RecordPredict(time.Microsecond, nil)
			}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}

	assert.Equal(t, int64(4000), collector.GetStats().PredictCount)
}

package mlgo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogger returns a debug-level JSON logger writing into buf.
func captureLogger(buf *bytes.Buffer) *Logger {
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return NewLogger(handler)
}

// lastRecord decodes the last JSON log line in buf.
func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var record map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &record))

	return record
}

func TestLoggerFieldHelpers(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	logger := captureLogger(&buf).WithModel("knn").WithK(3)

	logger.LogFit(ctx, 120, 4, nil)

	record := lastRecord(t, &buf)
	assert.Equal(t, "fit completed", record["msg"])
	assert.Equal(t, "knn", record["model"])
	assert.Equal(t, float64(3), record["k"])
	assert.Equal(t, float64(120), record["samples"])
	assert.Equal(t, float64(4), record["features"])
}

func TestLogFitError(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	logger := captureLogger(&buf)

	logger.LogFit(ctx, 0, 0, errors.New("empty training set"))

	record := lastRecord(t, &buf)
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "fit failed", record["msg"])
	assert.Equal(t, "empty training set", record["error"])
}

func TestLogSplit(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	logger := captureLogger(&buf)

	logger.LogSplit(ctx, 90, 10, 41)

	record := lastRecord(t, &buf)
	assert.Equal(t, "split completed", record["msg"])
	assert.Equal(t, float64(90), record["train"])
	assert.Equal(t, float64(10), record["test"])
	assert.Equal(t, float64(41), record["seed"])
}

func TestLogScore(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	logger := captureLogger(&buf)

	logger.LogScore(ctx, 25, 0.96, nil)

	record := lastRecord(t, &buf)
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "score completed", record["msg"])
	assert.Equal(t, float64(25), record["samples"])
	assert.Equal(t, 0.96, record["score"])
}

func TestLogLoad(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	logger := captureLogger(&buf)

	logger.LogLoad(ctx, "iris.csv", 150, nil)

	record := lastRecord(t, &buf)
	assert.Equal(t, "load completed", record["msg"])
	assert.Equal(t, "iris.csv", record["name"])
	assert.Equal(t, float64(150), record["rows"])
}

func TestNoopLoggerDisabled(t *testing.T) {
	ctx := context.Background()

	logger := NoopLogger()

	assert.False(t, logger.Enabled(ctx, slog.LevelError))
}

package mlgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with mlgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithK adds a k (neighbor count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithModel adds a model name field to the logger.
func (l *Logger) WithModel(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("model", name),
	}
}

// LogFit logs a model fit operation.
func (l *Logger) LogFit(ctx context.Context, samples, features int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit failed",
			"samples", samples,
			"features", features,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "fit completed",
			"samples", samples,
			"features", features,
		)
	}
}

// LogPredict logs a single prediction.
func (l *Logger) LogPredict(ctx context.Context, err error) {
	if err != nil {
		l.ErrorContext(ctx, "predict failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "predict completed")
	}
}

// LogBatchPredict logs a batch prediction.
func (l *Logger) LogBatchPredict(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch predict failed",
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch predict completed",
			"count", count,
		)
	}
}

// LogScore logs a scoring pass over an evaluation set.
func (l *Logger) LogScore(ctx context.Context, samples int, score float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "score failed",
			"samples", samples,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "score completed",
			"samples", samples,
			"score", score,
		)
	}
}

// LogSplit logs a train/test partition.
func (l *Logger) LogSplit(ctx context.Context, train, test int, seed int64) {
	l.DebugContext(ctx, "split completed",
		"train", train,
		"test", test,
		"seed", seed,
	)
}

// LogLoad logs a dataset load operation.
func (l *Logger) LogLoad(ctx context.Context, name string, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "load completed",
			"name", name,
			"rows", rows,
		)
	}
}

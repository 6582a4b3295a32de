package offsetarray

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with offsetarray-specific fields.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger on top of handler. A nil handler drops every
// record, so a zero configuration never writes to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.DiscardHandler
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(nil)
}

// WithRange adds the logical index range of an array to the logger.
func (l *Logger) WithRange(first, last int) *Logger {
	return &Logger{
		Logger: l.Logger.With("first", first, "last", last),
	}
}

// LogCreated logs a successful construction. The range fields come from
// WithRange.
func (l *Logger) LogCreated(ctx context.Context, kind string, length int) {
	l.DebugContext(ctx, "array created",
		"constructor", kind,
		"length", length,
	)
}

// LogConstructFailed logs a rejected construction.
func (l *Logger) LogConstructFailed(ctx context.Context, kind string, first int, err error) {
	l.DebugContext(ctx, "array construction rejected",
		"constructor", kind,
		"first", first,
		"error", err,
	)
}

// LogRejected logs a rejected indexed operation.
func (l *Logger) LogRejected(ctx context.Context, op string, index int, err error) {
	l.DebugContext(ctx, "operation rejected",
		"op", op,
		"index", index,
		"error", err,
	)
}

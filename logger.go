package sortego

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with sortego-specific context.
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
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithIndex adds a global-index field to the logger.
func (l *Logger) WithIndex(index int) *Logger {
	return &Logger{
		Logger: l.Logger.With("index", index),
	}
}

// WithSize adds a set-size field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// LogAdd logs an add operation.
func (l *Logger) LogAdd(index int, duplicate bool, err error) {
	if err != nil {
		l.Error("add failed", "error", err)
		return
	}
	l.Debug("add completed", "index", index, "duplicate", duplicate)
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(index int, err error) {
	if err != nil {
		l.Debug("remove failed", "error", err)
		return
	}
	l.Debug("remove completed", "index", index)
}

// LogAppendBucket logs a bulk-load operation.
func (l *Logger) LogAppendBucket(length int, err error) {
	if err != nil {
		l.Error("append bucket failed", "length", length, "error", err)
		return
	}
	l.Debug("append bucket completed", "length", length)
}

// LogRead logs a read operation (find, at, slice, size, to-list).
func (l *Logger) LogRead(op string, err error) {
	if err != nil {
		l.Debug("read failed", "op", op, "error", err)
		return
	}
	l.Debug("read completed", "op", op)
}

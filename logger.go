package numbuf

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with numbuf-specific context.
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

// LogDump logs a dump operation.
func (l *Logger) LogDump(path string, count int, err error) {
	if err != nil {
		l.Error("dump failed",
			"path", path,
			"count", count,
			"error", err,
		)
	} else {
		l.Debug("dump completed",
			"path", path,
			"count", count,
			"bytes", count*4,
		)
	}
}

// LogLoad logs a load operation.
func (l *Logger) LogLoad(path string, count int, err error) {
	if err != nil {
		l.Error("load failed",
			"path", path,
			"error", err,
		)
	} else {
		l.Debug("load completed",
			"path", path,
			"count", count,
		)
	}
}

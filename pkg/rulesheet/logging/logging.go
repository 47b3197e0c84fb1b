// Package logging provides the structured diagnostic logger used during a
// conversion run.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

var defaultLogger *slog.Logger

// ParseLevel converts a LOG_LEVEL value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q (must be debug, info, warn, or error)", s)
}

// Setup installs a text logger writing to w at the given level. Every line
// carries a run attribute identifying this invocation.
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	defaultLogger = slog.New(handler).With("run", uuid.NewString())
	slog.SetDefault(defaultLogger)
	return defaultLogger
}

// Logger returns the installed logger, or a stderr fallback at info level
// when Setup has not been called.
func Logger() *slog.Logger {
	if defaultLogger == nil {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return defaultLogger
}

// Debug logs msg at debug level on the current logger.
func Debug(msg string, args ...any) { Logger().Debug(msg, args...) }

// Info logs msg at info level on the current logger.
func Info(msg string, args ...any) { Logger().Info(msg, args...) }

// Warn logs msg at warn level on the current logger.
func Warn(msg string, args ...any) { Logger().Warn(msg, args...) }

// Error logs msg at error level on the current logger.
func Error(msg string, args ...any) { Logger().Error(msg, args...) }

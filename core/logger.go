package core

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"k8s.io/klog/v2"
)

// Logger provides leveled logging for the client on top of a logr.Logger.
// Debug and Info are emitted only when debug is enabled; Warn and Error always.
type Logger struct {
	enabled bool
	log     logr.Logger
}

// NewLogger creates a logger writing through klog.
func NewLogger(enabled bool) *Logger {
	return NewLoggerFrom(klog.NewKlogr(), enabled)
}

// NewLoggerFrom creates a logger writing to an existing logr sink.
func NewLoggerFrom(log logr.Logger, enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		log:     log.WithName("osclient"),
	}
}

// NopLogger discards everything.
func NopLogger() *Logger {
	return &Logger{log: logr.Discard()}
}

// Debug logs a debug message (only if debug is enabled).
func (l *Logger) Debug(message string, args ...any) {
	if l.enabled {
		l.log.Info(format(message, args), "level", "debug")
	}
}

// Info logs an info message (only if debug is enabled).
func (l *Logger) Info(message string, args ...any) {
	if l.enabled {
		l.log.Info(format(message, args), "level", "info")
	}
}

// Warn logs a warning message (always logged).
func (l *Logger) Warn(message string, args ...any) {
	l.log.Info(format(message, args), "level", "warn")
}

// Error logs an error message (always logged).
func (l *Logger) Error(err error, message string, args ...any) {
	l.log.Error(err, format(message, args))
}

// Timing logs request timing information.
func (l *Logger) Timing(method, path string, status int, duration time.Duration) {
	if l.enabled {
		l.log.Info("request completed", "level", "debug",
			"method", method, "path", path, "status", status, "durationMs", duration.Milliseconds())
	}
}

// Retry logs retry attempt information.
func (l *Logger) Retry(attempt int, delay time.Duration, reason string) {
	if l.enabled {
		l.Debug("Retry %d in %dms: %s", attempt, delay.Milliseconds(), reason)
	}
}

// Deprecation logs a deprecation warning (always logged).
func (l *Logger) Deprecation(w DeprecationWarning) {
	l.log.Info(w.Error(), "level", "warn", "deprecated", w.Method)
}

// Enabled returns whether debug logging is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Logr exposes the underlying logr.Logger.
func (l *Logger) Logr() logr.Logger {
	return l.log
}

func format(message string, args []any) string {
	if len(args) > 0 {
		return fmt.Sprintf(message, args...)
	}
	return message
}

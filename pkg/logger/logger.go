// Package logger wraps zap with a small keyval-style API used across the
// service. Services that want structured fields directly can reach the
// underlying *zap.Logger through Zap().
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the application logger.
type Logger struct {
	sugar *zap.SugaredLogger
	base  *zap.Logger
}

// New creates a logger for the given level and environment. Development
// environments get console encoding, everything else JSON.
func New(level, environment string) *Logger {
	var cfg zap.Config
	if environment == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		base = zap.NewNop()
	}

	return &Logger{sugar: base.Sugar(), base: base}
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() *Logger {
	base := zap.NewNop()
	return &Logger{sugar: base.Sugar(), base: base}
}

// Zap returns the underlying zap logger.
func (l *Logger) Zap() *zap.Logger {
	return l.base
}

// ForRequest returns a request-scoped sugared logger carrying the request
// ID, method and path on every entry.
func (l *Logger) ForRequest(requestID, method, path string) *zap.SugaredLogger {
	return l.sugar.With(
		"request_id", requestID,
		"method", method,
		"path", path,
	)
}

// Debug logs a debug message with alternating key/value pairs.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

// Info logs an info message with alternating key/value pairs.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Warn logs a warning with alternating key/value pairs.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}

// Error logs an error with alternating key/value pairs.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// Fatal logs the message and exits.
func (l *Logger) Fatal(msg string, keysAndValues ...interface{}) {
	l.sugar.Fatalw(msg, keysAndValues...)
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}

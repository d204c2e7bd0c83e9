// pkg/logger/logger.go

package logger

import (
	"go.uber.org/zap"
)

var log *zap.Logger

// SetLogger replaces the package-level logger instance.
func SetLogger(l *zap.Logger) {
	log = l
}

// L returns the package-level logger, which may be nil before initialization.
func L() *zap.Logger {
	return log
}

// GetLogger returns the global logger, initializing a fallback if needed.
func GetLogger() *zap.Logger {
	l := L()
	if l == nil {
		fallback := NewFallbackLogger()
		zap.ReplaceGlobals(fallback)
		SetLogger(fallback)
		return fallback
	}
	return l
}

// InitFallback installs the console fallback logger as the global logger.
func InitFallback() {
	fallback := NewFallbackLogger()
	zap.ReplaceGlobals(fallback)
	SetLogger(fallback)
}

// Sync flushes any buffered log entries. Call before the process exits.
func Sync() error {
	if log != nil {
		return log.Sync()
	}
	return nil
}

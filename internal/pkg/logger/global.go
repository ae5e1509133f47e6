package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	global *ZapLogger
)

// SetGlobalLogger installs the process-wide logger. Call once during
// startup, before any package-level logging happens.
func SetGlobalLogger(l *ZapLogger) {
	mu.Lock()
	global = l
	mu.Unlock()
}

func get() *ZapLogger {
	mu.RLock()
	l := global
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		// Fallback so callers that log before SetGlobalLogger still work.
		zl, _ := zap.NewProduction()
		global = &ZapLogger{Logger: zl, sugar: zl.Sugar()}
	}
	return global
}

func Debug(msg string, fields ...Field) { get().Debug(msg, fields...) }

func Info(msg string, fields ...Field) { get().Info(msg, fields...) }

func Warn(msg string, fields ...Field) { get().Warn(msg, fields...) }

func Error(msg string, fields ...Field) { get().Error(msg, fields...) }

// Package logx provides a single injectable logger for the forecasting
// engine, with a null-by-default process-wide instance. Components never
// take a lock in inner loops: trace calls are gated by a cheap
// IsLevelEnabled check before any formatting happens.
package logx

import (
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var (
	mu      sync.RWMutex
	logger  logrus.FieldLogger = defaultLogger()
	silent  int32              = 1 // atomic: 1 = silent (PanicLevel), 0 = caller-configured
)

// defaultLogger returns a logrus.Logger suppressed at PanicLevel so the
// engine is silent until a host injects its own logger.
func defaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

// SetLogger injects a caller-supplied logger as the package-wide default.
// Safe to call concurrently; takes effect for subsequent Logger() calls.
func SetLogger(l logrus.FieldLogger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
	atomic.StoreInt32(&silent, 0)
}

// Logger returns the current process-wide logger.
func Logger() logrus.FieldLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// TraceEnabled reports whether the current logger would emit at
// logrus.TraceLevel, without allocating or formatting anything. Hot loops
// must gate trace-level logging behind this check.
func TraceEnabled() bool {
	mu.RLock()
	l := logger
	mu.RUnlock()

	if le, ok := l.(interface{ IsLevelEnabled(logrus.Level) bool }); ok {
		return le.IsLevelEnabled(logrus.TraceLevel)
	}

	return atomic.LoadInt32(&silent) == 0
}

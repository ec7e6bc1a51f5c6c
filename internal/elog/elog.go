// Package elog is the engine's structured logger. It never logs string
// content (user strings are arbitrary data); it logs the engine's own
// lifecycle events: refcount-overflow GC cycles, pool pressure, config
// loads.
package elog

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Logger wraps a *zap.Logger with the handful of events the core ever
// needs to report.
type Logger struct {
	z *zap.Logger
}

// New builds a production logger. If dev is true, a human-readable
// development logger is used instead.
func New(dev bool) *Logger {
	var z *zap.Logger
	if dev {
		z, _ = zap.NewDevelopment()
	} else {
		z, _ = zap.NewProduction()
	}
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{z: z}
}

// Nop returns a logger that discards everything, used as the default so
// the core never requires a caller to configure logging.
func Nop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// GCCycle is the correlation id for one refcount-overflow-triggered
// invalidate+collect+retry cycle (spec.md §4.3).
type GCCycle string

// NewGCCycle mints a correlation id for a new GC-escape-hatch cycle.
func NewGCCycle() GCCycle {
	return GCCycle(uuid.NewString())
}

// RefcountOverflow logs the start of a refcount-overflow GC cycle.
func (l *Logger) RefcountOverflow(cycle GCCycle, container string) {
	l.z.Info("refcount overflow, invalidating caches and running gc",
		zap.String("cycle", string(cycle)),
		zap.String("container", container))
}

// RefcountOverflowResolved logs how a refcount-overflow cycle resolved.
func (l *Logger) RefcountOverflowResolved(cycle GCCycle, deepCopied bool) {
	l.z.Info("refcount overflow cycle resolved",
		zap.String("cycle", string(cycle)),
		zap.Bool("deep_copied", deepCopied))
}

// PoolPressure logs when a pool's outstanding allocation crosses a
// configured watermark.
func (l *Logger) PoolPressure(pool string, outstanding int64, watermark int64) {
	l.z.Warn("pool pressure",
		zap.String("pool", pool),
		zap.Int64("outstanding_bytes", outstanding),
		zap.Int64("watermark_bytes", watermark))
}

// ConfigLoaded logs a successful configuration load.
func (l *Logger) ConfigLoaded(path string) {
	l.z.Info("engine configuration loaded", zap.String("path", path))
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.z.Sync()
}

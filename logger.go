package viewport

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely,
// making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from the engine's
// goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for viewport and its sub-packages.
// By default the engine produces no log output. Pass nil to restore
// the default silent behavior.
//
// Log levels used:
//   - [slog.LevelDebug]: per-frame internals (placement counts, cache maintenance)
//   - [slog.LevelInfo]: lifecycle events (engine construction)
//   - [slog.LevelWarn]: recovered resource errors (rasterization failures,
//     skipped misaligned zoom levels), logged once per occurrence rather
//     than once per frame
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (raster/, compose/)
// call this to share the same logger configuration without import
// cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

package eink

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so the caller skips message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

// pkgAttr tags every record eink emits, so its output can be filtered out
// of an application log.
var pkgAttr = slog.String("pkg", "eink")

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by eink.
// By default, eink produces no log output. Pass nil to restore the
// silent default. Records carry a pkg=eink attribute.
//
// Log levels used by eink:
//   - [slog.LevelDebug]: skipped draws, font fallbacks, device handoff
//   - [slog.LevelWarn]: font files that could not be loaded
//
// Example:
//
//	eink.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l.With(pkgAttr))
}

// Logger returns the current logger used by eink.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

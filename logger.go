package colorenc

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for colorenc and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// SetLogger is safe for concurrent use.
//
// colorenc only logs at [slog.LevelDebug]. Records carry a pkg attribute
// naming the package that emitted them: colorenc for parallel conversion
// plans, tonemap for baked curve coefficients, palette for parsed files
// and shader for compiled modules.
//
// Example:
//
//	colorenc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// LoggerFor returns the current logger with a pkg=name attribute. The
// tonemap, palette and shader packages log through it. While logging is
// off the silent logger is returned as-is.
func LoggerFor(name string) *slog.Logger {
	l := loggerPtr.Load()
	if _, silent := l.Handler().(nopHandler); silent {
		return l
	}
	return l.With(slog.String("pkg", name))
}

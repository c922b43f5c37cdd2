package dlist

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/dlist/text"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for dlist and its sub-packages.
// By default, dlist produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior. The logger is also handed to the text package, and to
// the draw service of every display list created afterwards when that
// service accepts one.
//
// Log levels used by dlist:
//   - [slog.LevelDebug]: index rebuilds, layout iterations, patch decisions
//   - [slog.LevelInfo]: frame and surface creation
//   - [slog.LevelWarn]: rejected zooms, unplaceable attached frames,
//     surface calculation failures
//
// Example:
//
//	dlist.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	text.SetLogger(l)
}

// Logger returns the current logger used by dlist.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by draw services that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// propagateLogger passes the logger to a draw service if it implements
// the loggerSetter interface.
func propagateLogger(svc any, l *slog.Logger) {
	if ls, ok := svc.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}

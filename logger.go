package glyphterm

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards everything. Enabled reports false so that callers
// never format attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

// logger is swapped atomically; terminals on different goroutines log
// while the host reconfigures.
var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(silent)
}

// SetLogger sets the logger shared by glyphterm, atlas and gpupresent.
// Nothing is logged until it is called. Pass nil to silence logging again.
// SetLogger is safe for concurrent use.
//
// Log levels used by glyphterm:
//   - [slog.LevelDebug]: resizes, geometry layout, resource resolution, rebuilds
//   - [slog.LevelWarn]: renders that fail because a font or texture is missing
//
// Example:
//
//	glyphterm.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger. It never returns nil.
func Logger() *slog.Logger {
	return logger.Load()
}

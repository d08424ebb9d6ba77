package path2d

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Records logged by this package, all at [slog.LevelDebug]:
//
//	"path2d: skipped non-finite arguments"     op=<append operation>
//	"path2d: path string truncated"            segments=<kept> err=<*SyntaxError>
//	"path2d: addPath skipped non-finite matrix" matrix=<Matrix>
//
// Each goes to the path's own logger when it was created with WithLogger,
// and to the package logger otherwise. FromString logs through the path it
// is building, so its WithLogger option applies to the truncation record.

// silent discards every record and reports every level disabled, so the
// attributes of skipped calls are never formatted.
type silent struct{}

func (silent) Enabled(context.Context, slog.Level) bool  { return false }
func (silent) Handle(context.Context, slog.Record) error { return nil }
func (silent) WithAttrs([]slog.Attr) slog.Handler        { return silent{} }
func (silent) WithGroup(string) slog.Handler             { return silent{} }

var (
	silentLogger = slog.New(silent{})

	// pkgLogger is nil until SetLogger installs a logger.
	pkgLogger atomic.Pointer[slog.Logger]
)

// SetLogger installs the logger used by paths created without WithLogger.
// Paths look it up on every record, so it also applies to paths that
// already exist. nil restores the default, which discards everything.
//
//	path2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
}

// Logger returns the package logger. It is never nil and is safe for
// concurrent use.
func Logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return silentLogger
}

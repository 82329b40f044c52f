package hcal

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a frame is being driven.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for hcal and all its sub-packages.
// By default, hcal produces no log output.
//
// Pass nil to restore the silent default.
//
// Log levels used by hcal:
//   - [slog.LevelDebug]: screen stack reconciliation, glyph rescales, frame vertex counts
//   - [slog.LevelInfo]: lifecycle events (device created, window opened)
//   - [slog.LevelWarn]: non-fatal issues (render errors a host chose to skip)
//
// Example:
//
//	hcal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by hcal.
// Sub-packages (render, screen, ui, internal/gpu) call this to share the
// same logger configuration without import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

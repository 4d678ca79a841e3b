// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmesh

import (
	"context"
	"log/slog"
	"sync/atomic"
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
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for pathmesh and all its sub-packages.
// By default, pathmesh produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by pathmesh:
//   - [slog.LevelDebug]: protocol step progress, vertex counts
//   - [slog.LevelWarn]: non-fatal issues (empty fill results, release after
//     a failed step)
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	pathmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// Propagate to registered engines that accept a logger.
	enginesMu.RLock()
	for _, e := range engines {
		propagateLogger(e, l)
	}
	enginesMu.RUnlock()
}

// Logger returns the current logger used by pathmesh.
// Sub-packages (gpu/, svgpath/) call this to share the same logger
// configuration without introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by engines that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// propagateLogger passes the logger to an engine if it implements the
// loggerSetter interface. Called from both SetLogger and RegisterEngine to
// ensure every engine always has the current logger.
func propagateLogger(e Engine, l *slog.Logger) {
	if ls, ok := e.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}

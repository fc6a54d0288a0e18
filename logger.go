// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/editor/internal/gpu"
)

// nopHandler discards every record. Enabled reports false, so slog never
// formats the message.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger; SetLogger may race with any Draw.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for the editor and its GPU internals.
// By default, the editor produces no log output.
//
// Log levels used:
//   - [slog.LevelDebug]: arena sizes, pipeline creation, per-frame submission
//   - [slog.LevelInfo]: renderer lifecycle
//   - [slog.LevelWarn]: skipped frames, geometry dropped for capacity
//
// Pass nil to restore the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gpu.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"log/slog"
	"sync/atomic"
)

var (
	logger  atomic.Pointer[slog.Logger]
	discard = slog.New(slog.DiscardHandler)
)

// slogger returns the logger set by SetLogger, or one that discards.
func slogger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return discard
}

// SetLogger sets the logger shared by arenas, pipelines and sessions.
// editor.SetLogger forwards here. Nil silences the package.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

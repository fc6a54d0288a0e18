package gpu

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSloggerDefaultDiscards(t *testing.T) {
	SetLogger(nil)
	if slogger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard")
	}
}

func TestSetLoggerShared(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	slogger().Debug("arena created", "label", "test")
	if !strings.Contains(buf.String(), "arena created") {
		t.Errorf("log output = %q", buf.String())
	}
}

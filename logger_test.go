package kinex

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	ParseValue("auto")
	if !strings.Contains(buf.String(), "no leading numeral") {
		t.Errorf("expected malformed value warning, got: %s", buf.String())
	}

	e := NewEngine(Config{})
	obj := NewObject(map[string]any{"x": 0})
	if _, err := e.To(obj, 0, Props{}.Add("x", 1), Options{}); err != nil {
		t.Fatalf("To: %v", err)
	}
	if !strings.Contains(buf.String(), "tween completed") {
		t.Errorf("engine did not use the package logger, got: %s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"WARN", slog.LevelWarn},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLevelTag(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelError, "ERROR"},
		{slog.LevelWarn, "WARN "},
		{slog.LevelInfo, "INFO "},
		{slog.LevelDebug, "DEBUG"},
	}
	for _, tt := range tests {
		if got := levelTag(tt.level); got != tt.want {
			t.Errorf("levelTag(%v) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestConsoleHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := &consoleHandler{w: &buf, level: slog.LevelDebug}

	r := slog.NewRecord(time.Date(2026, 1, 2, 12, 30, 45, 123_000_000, time.UTC), slog.LevelInfo, "Render loop started", 0)
	r.AddAttrs(slog.Int("fps", 100))
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	line := buf.String()
	if !strings.HasPrefix(line, "12:30:45.123 INFO  Render loop started") {
		t.Fatalf("line = %q", line)
	}
	if !strings.Contains(line, "fps=100") {
		t.Fatalf("line missing attr: %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Fatalf("line not newline-terminated: %q", line)
	}
}

func TestConsoleHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	var h slog.Handler = &consoleHandler{w: &buf, level: slog.LevelDebug}
	h = h.WithGroup("sim").WithAttrs([]slog.Attr{slog.Int("tick", 7)})

	r := slog.NewRecord(time.Now(), slog.LevelWarn, "Unhandled event", 0)
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.Contains(buf.String(), "sim.tick=7") {
		t.Fatalf("line = %q, want grouped attr", buf.String())
	}
}

func TestConsoleHandler_Enabled(t *testing.T) {
	h := &consoleHandler{level: slog.LevelWarn}
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("info should be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("error should be enabled at warn level")
	}
}

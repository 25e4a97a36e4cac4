package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelWarn},
		{"", slog.LevelWarn},
	}

	for _, tt := range tests {
		got := ParseLevel(tt.input)
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, true, slog.LevelInfo))

	logger.Info("read capture", "source", "p0.jsonl")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("expected valid JSON output, got error: %v\noutput: %s", err, buf.String())
	}
	if m["msg"] != "read capture" {
		t.Errorf("expected msg 'read capture', got %q", m["msg"])
	}
	if m["source"] != "p0.jsonl" {
		t.Errorf("expected source 'p0.jsonl', got %q", m["source"])
	}
}

func TestNewHandler_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, false, slog.LevelInfo))

	logger.Info("read capture", "parsed", 3)

	out := buf.String()
	if !strings.Contains(out, "msg=\"read capture\"") {
		t.Errorf("expected text output with msg, got: %s", out)
	}
	if !strings.Contains(out, "parsed=3") {
		t.Errorf("expected parsed=3 in output, got: %s", out)
	}
}

func TestNewHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, false, slog.LevelWarn))

	logger.Debug("skipping malformed line")
	logger.Info("read capture")

	if buf.Len() != 0 {
		t.Errorf("expected no output below warn, got: %s", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warn message, got: %s", buf.String())
	}
}

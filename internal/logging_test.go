package internal

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitLogging_JSON(t *testing.T) {
	orig := slog.Default()
	defer slog.SetDefault(orig)

	var buf bytes.Buffer
	logger := InitLogging(&buf, "WARN", "json")
	logger.Info("dropped")
	logger.Warn("kept", "period", "2023")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 log line above WARN, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Log line is not JSON: %v", err)
	}
	if entry["msg"] != "kept" || entry["period"] != "2023" {
		t.Errorf("Unexpected entry: %v", entry)
	}
	if slog.Default() != logger {
		t.Error("InitLogging should install the default logger")
	}
}

func TestInitLogging_Text(t *testing.T) {
	orig := slog.Default()
	defer slog.SetDefault(orig)

	var buf bytes.Buffer
	InitLogging(&buf, "INFO", "text").Info("dataset ready", "zones", 265)
	if !strings.Contains(buf.String(), "msg=\"dataset ready\"") || !strings.Contains(buf.String(), "zones=265") {
		t.Errorf("Unexpected text output: %q", buf.String())
	}
}

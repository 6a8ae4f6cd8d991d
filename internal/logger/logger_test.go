package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/fresh-releases/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"", "info"},
		{"warn", "warn"},
		{"error", "error"},
		{"unknown", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level := parseLevel(tt.input)
			if level.String() != tt.expected {
				t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, level.String(), tt.expected)
			}
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "fresh.log")

	log, err := New(&config.LoggingConfig{Level: "debug", Format: "json", Output: logPath})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.WithSession("abc").WithPage("sitewide").Infow("fetched releases", "count", 3)
	_ = log.Sync()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	content := string(data)
	for _, want := range []string{`"session":"abc"`, `"page":"sitewide"`, `"count":3`, `"msg":"fetched releases"`} {
		if !strings.Contains(content, want) {
			t.Errorf("log output missing %s: %s", want, content)
		}
	}
}

func TestNew_InvalidFile(t *testing.T) {
	_, err := New(&config.LoggingConfig{Output: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	if err == nil {
		t.Error("expected error for unwritable log path")
	}
}

func TestNew_None(t *testing.T) {
	log, err := New(&config.LoggingConfig{Output: "none"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	log.Info("discarded")
}

func TestClose_ClosesLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "fresh.log")

	log, err := New(&config.LoggingConfig{Format: "json", Output: logPath})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	log.Infow("closing", "count", 1)

	if err := log.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if log.file != nil {
		t.Error("Close() should release the log file")
	}
	if err := log.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"closing"`) {
		t.Errorf("log output missing entry: %s", data)
	}
}

func TestClose_WithoutFile(t *testing.T) {
	if err := NewNop().Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

package logger

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		name     string
		level    LogLevel
		expected string
	}{
		{"DEBUG level", DEBUG, "DEBUG"},
		{"INFO level", INFO, "INFO"},
		{"WARN level", WARN, "WARN"},
		{"ERROR level", ERROR, "ERROR"},
		{"Unknown level", LogLevel(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.level.String()
			if result != tt.expected {
				t.Errorf("LogLevel.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  LogLevel
		wantError bool
	}{
		{"Parse DEBUG", "DEBUG", DEBUG, false},
		{"Parse debug lowercase", "debug", DEBUG, false},
		{"Parse INFO", "INFO", INFO, false},
		{"Parse WARN", "WARN", WARN, false},
		{"Parse WARNING", "WARNING", WARN, false},
		{"Parse ERROR", "ERROR", ERROR, false},
		{"Parse invalid", "INVALID", INFO, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantError {
				t.Errorf("ParseLevel() error = %v, wantError %v", err, tt.wantError)
			}
			if !tt.wantError && result != tt.expected {
				t.Errorf("ParseLevel() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() returned nil")
	}
	if logger.level != INFO {
		t.Errorf("Default level = %v, want %v", logger.level, INFO)
	}
	if logger.fields == nil {
		t.Error("Fields map not initialized")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: WARN, Output: &buf})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("DEBUG message logged below threshold")
	}
	if strings.Contains(output, "info message") {
		t.Error("INFO message logged below threshold")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("WARN message missing")
	}
	if !strings.Contains(output, "error message") {
		t.Error("ERROR message missing")
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: DEBUG, Output: &buf})

	child := logger.WithFields("component", "submit", "node", "default")
	child.Info("submitting")

	output := buf.String()
	if !strings.Contains(output, "component=submit") {
		t.Errorf("missing component field in %q", output)
	}
	if !strings.Contains(output, "node=default") {
		t.Errorf("missing node field in %q", output)
	}

	// Parent logger must be unaffected
	buf.Reset()
	logger.Info("plain")
	if strings.Contains(buf.String(), "component=") {
		t.Error("fields leaked into parent logger")
	}
}

func TestFieldFormatting(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: DEBUG, Output: &buf})

	logger.Info("msg",
		"quoted", "has spaces",
		"err", fmt.Errorf("boom"),
	)

	output := buf.String()
	if !strings.Contains(output, `quoted="has spaces"`) {
		t.Errorf("string with spaces not quoted: %q", output)
	}
	if !strings.Contains(output, `err="boom"`) {
		t.Errorf("error value not quoted: %q", output)
	}
}

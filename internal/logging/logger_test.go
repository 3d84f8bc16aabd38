package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_TraceLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  "trace",
		Pretty: false,
		Output: &buf,
	})

	logger.Trace().Msg("trace message")
	logger.Debug().Msg("debug message")
	logger.Info().Msg("info message")

	output := buf.String()

	if !strings.Contains(output, "trace message") {
		t.Error("Expected trace message to be logged at trace level")
	}
	if !strings.Contains(output, "debug message") {
		t.Error("Expected debug message to be logged at trace level")
	}
	if !strings.Contains(output, "info message") {
		t.Error("Expected info message to be logged at trace level")
	}
}

func TestNew_InfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  "info",
		Pretty: false,
		Output: &buf,
	})

	// Trace and debug messages are NOT logged at info level.
	logger.Trace().Msg("trace message")
	logger.Debug().Msg("debug message")
	logger.Info().Msg("info message")

	output := buf.String()

	if strings.Contains(output, "trace message") {
		t.Error("Expected trace message to NOT be logged at info level")
	}
	if strings.Contains(output, "debug message") {
		t.Error("Expected debug message to NOT be logged at info level")
	}
	if !strings.Contains(output, "info message") {
		t.Error("Expected info message to be logged at info level")
	}
}

func TestNew_WarnLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  "warn",
		Pretty: false,
		Output: &buf,
	})

	logger.Info().Msg("info message")
	logger.Warn().Msg("warn message")

	output := buf.String()

	if strings.Contains(output, "info message") {
		t.Error("Expected info message to NOT be logged at warn level")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("Expected warn message to be logged at warn level")
	}
}

func TestNewWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithComponent(Config{
		Level:  "info",
		Pretty: false,
		Output: &buf,
	}, "registry")

	logger.Info().Msg("test message")

	output := buf.String()

	if !strings.Contains(output, "registry") {
		t.Error("Expected log to contain component name 'registry'")
	}
	if !strings.Contains(output, "test message") {
		t.Error("Expected log to contain message 'test message'")
	}
}

func TestNew_PrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  "info",
		Pretty: true,
		Output: &buf,
	})

	logger.Info().Msg("test message")

	// Pretty output should still contain the message text.
	if !strings.Contains(buf.String(), "test message") {
		t.Error("Expected pretty output to contain message 'test message'")
	}
}

func TestNew_DefaultOutput(t *testing.T) {
	// The logger must not panic when Output is nil.
	logger := New(Config{
		Level:  "info",
		Pretty: false,
		Output: nil,
	})

	logger.Info().Msg("test message")
}

func TestNew_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  "invalid",
		Pretty: false,
		Output: &buf,
	})

	// Invalid level names fall back to info.
	logger.Debug().Msg("debug message")
	logger.Info().Msg("info message")

	output := buf.String()

	if strings.Contains(output, "debug message") {
		t.Error("Expected debug message to NOT be logged with invalid level")
	}
	if !strings.Contains(output, "info message") {
		t.Error("Expected info message to be logged with invalid level")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("Expected default level 'info', got '%s'", cfg.Level)
	}
	if !cfg.Pretty {
		t.Error("Expected default pretty to be true")
	}
}

func TestNew_LevelHierarchy(t *testing.T) {
	levels := []struct {
		level    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}

	for _, tc := range levels {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{
				Level:  tc.level,
				Pretty: false,
				Output: &buf,
			})

			if logger.GetLevel() != tc.expected {
				t.Errorf("Expected level %v, got %v", tc.expected, logger.GetLevel())
			}
		})
	}
}

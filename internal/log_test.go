package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(LogLevelInfo, &buf)

	logger.Debug("hidden %d", 1)
	logger.Info("evaluated %d p-values", 6)
	logger.Error("failed: %s", "boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO] evaluated 6 p-values")
	assert.Contains(t, out, "[ERROR] failed: boom")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
		ok    bool
	}{
		{"ERROR", LogLevelError, true},
		{"warn", LogLevelWarn, true},
		{"Debug", LogLevelDebug, true},
		{"TRACE", LogLevelTrace, true},
		{"", LogLevelInfo, false},
		{"verbose", LogLevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLogLevel(tt.input)
		assert.Equal(t, tt.want, got, tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
	}
}

func TestNilLoggerIsSilent(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() { logger.Info("nothing") })
}

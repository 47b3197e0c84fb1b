package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		level, err := ParseLevel(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, level, tt.input)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestSetup(t *testing.T) {
	t.Cleanup(func() { defaultLogger = nil })

	var buf bytes.Buffer
	Setup(&buf, slog.LevelWarn)

	Info("hidden")
	Warn("unknown state", "state", "Atlantis")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "state=Atlantis")
	assert.Contains(t, out, "run=")
}

func TestLoggerFallback(t *testing.T) {
	defaultLogger = nil
	assert.NotNil(t, Logger())
}

func TestLevelFunctions(t *testing.T) {
	t.Cleanup(func() { defaultLogger = nil })

	var buf bytes.Buffer
	Setup(&buf, slog.LevelDebug)

	Debug("sheet loaded")
	Info("conversion complete")
	Warn("pivot row skipped")
	Error("conversion failed")

	out := buf.String()
	assert.Contains(t, out, `level=DEBUG msg="sheet loaded"`)
	assert.Contains(t, out, `level=INFO msg="conversion complete"`)
	assert.Contains(t, out, `level=WARN msg="pivot row skipped"`)
	assert.Contains(t, out, `level=ERROR msg="conversion failed"`)
}

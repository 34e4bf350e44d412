package log

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"ERROR", slog.LevelError},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{"trace", LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := parseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}

	_, err := parseLevel("verbose")
	assert.EqualError(t, err, "invalid log level: verbose")
}

func captureLogs(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	require.NoError(t, SetLogLevel(level))
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		_ = SetLogLevel("info")
	})
	return &buf
}

func TestTraceLogging(t *testing.T) {
	t.Run("suppressed at debug", func(t *testing.T) {
		buf := captureLogs(t, "debug")
		LogTraceWithFields("filter", "Skipping record", map[string]any{"line": 1})
		assert.Empty(t, buf.String())
	})

	t.Run("emitted at trace", func(t *testing.T) {
		buf := captureLogs(t, "trace")
		LogTraceWithFields("filter", "Skipping record", map[string]any{"line": 1})
		out := buf.String()
		assert.Contains(t, out, "level=TRACE")
		assert.Contains(t, out, "component=filter")
		assert.Contains(t, out, "line=1")
	})
}

func TestDebugLogging(t *testing.T) {
	buf := captureLogs(t, "info")
	LogDebugWithFields("main", "Finished", nil)
	assert.Empty(t, buf.String())

	buf = captureLogs(t, "debug")
	LogDebugWithFields("main", "Finished", map[string]any{"emitted": 2})
	assert.Contains(t, buf.String(), "emitted=2")
}

func TestLogError(t *testing.T) {
	buf := captureLogs(t, "error")
	LogError("failed: %v", "boom")
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), `msg="failed: boom"`)
}

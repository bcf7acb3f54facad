package logging

import (
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
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLogger_WritesScopedLines(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("sync", "sync completed")
	logger.Error("store", "write failed")

	content, err := os.ReadFile(LogPath(dataDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO] [sync] sync completed")
	assert.Contains(t, string(content), "[ERROR] [store] write failed")
}

func TestLogger_LevelFiltering(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Debug("timer", "debug message")
	logger.Info("timer", "info message")
	logger.Warn("timer", "warn message")

	content, err := os.ReadFile(LogPath(dataDir))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "warn message")
}

func TestLogger_DisabledWithoutDataDir(t *testing.T) {
	logger := New("", slog.LevelInfo)
	// Must not panic or create files.
	logger.Info("sync", "ignored")
	require.NoError(t, logger.Close())
}

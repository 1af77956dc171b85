package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"hr-dashboard-service/internal/config"
)

func TestSetupLoggerCreatesFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "app.log")
	cfg := config.Config{
		Logging: config.LoggingConfig{
			Output: path,
			Level:  "debug",
		},
	}

	cleanup, err := setupLogger(cfg)
	require.NoError(t, err)

	slog.Debug("test message")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "test message")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, parseLevel("warn"))
	require.Equal(t, slog.LevelError, parseLevel("error"))
	require.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestLogOutputStd(t *testing.T) {
	w, c, err := logOutput("stderr")
	require.NoError(t, err)
	require.Equal(t, os.Stderr, w)
	require.Nil(t, c)
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepad/internal/config"
	"notepad/internal/logger"
)

func TestDetermineLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")
	assert.Equal(t, logger.WarnLevel, determineLogLevel("warn"))

	t.Setenv("DEBUG", "1")
	assert.Equal(t, logger.DebugLevel, determineLogLevel("warn"))

	t.Setenv("LOG_LEVEL", "error")
	assert.Equal(t, logger.ErrorLevel, determineLogLevel("debug"))
}

func TestNewLoggerWritesJSONFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")
	path := filepath.Join(t.TempDir(), "logs", "notepad.log")

	log, closeLog, err := newLogger(config.LogConfig{Level: "info", JSON: true, File: path})
	require.NoError(t, err)
	log.Info("Test", "hello", nil)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"component":"Test"`)
}

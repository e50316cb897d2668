package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesJSONLinesToFile(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "nested", "deck.log")
	logger, cleanup, err := New(Config{Path: logPath, Level: "debug"})
	require.NoError(t, err)

	logger.Debug("navigated", zap.Int("index", 3))
	logger.Info("presentation opened")
	cleanup()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "navigated", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.EqualValues(t, 3, entry["index"])
	assert.Contains(t, entry, "ts")
}

func TestNewFiltersBelowLevel(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "deck.log")
	logger, cleanup, err := New(Config{Path: logPath, Level: "warn"})
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("loud")
	cleanup()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "loud")
}

func TestNewEmptyPathIsNop(t *testing.T) {
	t.Parallel()

	logger, cleanup, err := New(Config{})
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("dropped")
	cleanup()
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, _, err := New(Config{Path: filepath.Join(t.TempDir(), "deck.log"), Level: "loud"})
	assert.ErrorContains(t, err, "parse log level")
}


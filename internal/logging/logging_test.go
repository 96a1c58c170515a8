package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/config"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Log: config.Log{Level: "info"}}

	logger, closer, err := New(cfg, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("game created", "game_id", "abc")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "game created", record["msg"])
	assert.Equal(t, "abc", record["game_id"])
}

func TestNewDevelopment(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Development: true, Log: config.Log{Level: "info"}}

	logger, closer, err := New(cfg, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug("stopwatch started")
	assert.Contains(t, buf.String(), "stopwatch started")
}

func TestNewWithFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "sweeper.log")
	cfg := &config.Config{Log: config.Log{Level: "info", File: path, MaxSizeMB: 1}}

	logger, closer, err := New(cfg, &buf)
	require.NoError(t, err)

	logger.With("game_id", "abc").Info("game over", "status", "won")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"won"`)
	assert.Contains(t, string(data), `"game_id":"abc"`)
	assert.Contains(t, buf.String(), `"status":"won"`)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New(&config.Config{Log: config.Log{Level: "loud"}}, &bytes.Buffer{})
	assert.Error(t, err)
}

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load(NewFlagSet("test"))
	require.NoError(t, err)

	assert.Equal(t, "moderate", cfg.Difficulty)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.False(t, cfg.Development)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)

	d, err := cfg.Preset()
	require.NoError(t, err)
	assert.Equal(t, mines.Moderate, d)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadEnvAndFlags(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SWEEPER_DIFFICULTY", "hard")
	t.Setenv("SWEEPER_SEED", "42")
	t.Setenv("SWEEPER_LOG_LEVEL", "warn")

	cfg, err := Load(NewFlagSet("test"))
	require.NoError(t, err)
	assert.Equal(t, "hard", cfg.Difficulty)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "warn", cfg.Log.Level)

	fs := NewFlagSet("test")
	require.NoError(t, fs.Parse([]string{"-d", "easy", "--dev"}))
	cfg, err = Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "easy", cfg.Difficulty)
	assert.True(t, cfg.Development)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
difficulty: custom
custom:
  size: 7
  mines: 5
log:
  file: sweeper.log
`), 0o644))

	fs := NewFlagSet("test")
	require.NoError(t, fs.Parse([]string{"--config", path}))
	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Size: 7, MineCount: 5}, cfg.Custom)
	assert.Equal(t, "sweeper.log", cfg.Log.File)

	d, err := cfg.Preset()
	require.NoError(t, err)
	assert.Equal(t, mines.Custom, d)
}

func TestLoadDiscoversConfigInWorkingDir(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "sweeper.yaml"), []byte("difficulty: easy\n"), 0o644,
	))

	cfg, err := Load(NewFlagSet("test"))
	require.NoError(t, err)
	assert.Equal(t, "easy", cfg.Difficulty)
}

func TestLoadRejectsInvalid(t *testing.T) {
	chdirTemp(t)

	tests := []struct {
		name string
		args []string
		err  error
	}{
		{"unknown difficulty", []string{"-d", "expert"}, mines.ErrUnknownDifficulty},
		{"custom without size", []string{"-d", "custom"}, mines.ErrInvalidDimension},
		{"custom too many mines", []string{"-d", "custom", "--size", "3", "--mines", "9"}, mines.ErrInvalidMineCount},
		{"bad log level", []string{"--log-level", "loud"}, nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fs := NewFlagSet("test")
			require.NoError(t, fs.Parse(test.args))
			_, err := Load(fs)
			require.Error(t, err)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
			}
		})
	}

	_, err := Load(nil)
	assert.NoError(t, err)
}

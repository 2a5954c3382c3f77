package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Editor)
	assert.False(t, cfg.Interactive)
	assert.False(t, cfg.UseTrash)
	assert.True(t, cfg.History.Enabled)
	assert.NotEmpty(t, cfg.History.Path)
	assert.Equal(t, DefaultHistoryRetentionDays, cfg.History.RetentionDays)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, "edir")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
		"editor: nano\ninteractive: true\nhistory:\n  retention_days: 7\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "nano", cfg.Editor)
	assert.True(t, cfg.Interactive)
	assert.Equal(t, 7, cfg.History.RetentionDays)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("EDIR_EDITOR", "emacs")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "emacs", cfg.Editor)
}

func TestWriteDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	require.NoError(t, WriteDefault())
	path := filepath.Join(home, "edir", "config.yaml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "use_trash")

	// A second call must not clobber an existing file.
	require.NoError(t, os.WriteFile(path, []byte("editor: nano\n"), 0o644))
	require.NoError(t, WriteDefault())
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "editor: nano\n", string(data))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/downloads")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "downloads"), got)

	got, err = ExpandPath("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)

	got, err = ExpandPath("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)
}

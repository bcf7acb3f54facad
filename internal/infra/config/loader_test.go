package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takumin/tempo/internal/domain"
)

func TestLoader_MissingFileReturnsDefaults(t *testing.T) {
	loader := NewLoader(t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Sync.IsConfigured())
	assert.False(t, cfg.Sync.AutoSync)
}

func TestLoader_ParsesFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[sync]
token = "ghp_test"
username = "alice"
repo = "hours"
auto_sync = true

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o600))

	cfg, err := NewLoader(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "ghp_test", cfg.Sync.Token)
	assert.Equal(t, "alice", cfg.Sync.Username)
	assert.Equal(t, "hours", cfg.Sync.Repo)
	assert.True(t, cfg.Sync.AutoSync)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte("not = [toml"), 0o600))

	_, err := NewLoader(dir).Load()
	assert.Error(t, err)
}

func TestManager_SaveRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "tempo")
	manager := NewManager(dir)

	cfg := domain.NewDefaultConfig()
	cfg.Sync = domain.SyncConfig{
		Token:    "ghp_test",
		Username: "alice",
		Repo:     "hours",
		AutoSync: true,
	}
	require.NoError(t, manager.Save(cfg))

	// Token-bearing file must not be world readable.
	info, err := os.Stat(manager.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := NewLoader(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.Sync, loaded.Sync)
	assert.Equal(t, cfg.Log, loaded.Log)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	assert.Equal(t, "v23.0", cfg.APIVersion)
	assert.True(t, cfg.ParsedResponses)
	assert.Equal(t, 30, cfg.HTTPTimeoutSecs)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Token)
	assert.Empty(t, cfg.BotID)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"token": "file-token",
		"bot_id": "106540352242922",
		"api_version": "v22.0",
		"http_timeout_secs": 5
	}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.Token)
	assert.Equal(t, "106540352242922", cfg.BotID)
	assert.Equal(t, "v22.0", cfg.APIVersion)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token": "file-token"}`), 0o600))

	t.Setenv("WAGRAPH_TOKEN", "env-token")
	t.Setenv("WAGRAPH_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Token = "secret"
	cfg.BotID = "106540352242922"
	require.NoError(t, cfg.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

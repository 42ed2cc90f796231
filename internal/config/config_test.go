package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "dfmea.db", cfg.DB.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "stdio", cfg.Transport)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DFMEA_SERVER_PORT", "9090")
	t.Setenv("DFMEA_DB_PATH", "/tmp/custom.db")
	t.Setenv("DFMEA_LOG_LEVEL", "debug")
	t.Setenv("DFMEA_TRANSPORT", "http")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/custom.db", cfg.DB.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "http", cfg.Transport)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("DFMEA_SERVER_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7070\ndb:\n  path: file.db\n"), 0o644))
	t.Setenv("DFMEA_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "file.db", cfg.DB.Path)
}

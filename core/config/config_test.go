package config_test

import (
	"testing"

	"bunny-manager/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Storage.ConnectTimeoutSeconds)
	assert.Equal(t, 5, cfg.Storage.ReadTimeoutSeconds)
	assert.Empty(t, cfg.Storage.Region)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("STORAGE_ACCESS_KEY", "ak")
	t.Setenv("STORAGE_API_KEY", "pk")
	t.Setenv("STORAGE_ZONE", "z1")
	t.Setenv("SERVER_PORT", "9999")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "ak", cfg.Storage.AccessKey)
	assert.Equal(t, "pk", cfg.Storage.ApiKey)
	assert.Equal(t, "z1", cfg.Storage.Zone)
	assert.Equal(t, "9999", cfg.Server.Port)
}

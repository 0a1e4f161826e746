package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TERMSTATE_CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termstate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  base_url: https://api.example.com
  timeout: 5s
prefs:
  driver: memory
locales:
  cache_ttl: 10m
log:
  level: debug
`), 0o600))
	t.Setenv("TERMSTATE_CONFIG_PATH", path)
	t.Setenv("TERMSTATE_LOG_LEVEL", "warn")
	t.Setenv("TERMSTATE_TRANSPORT_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	require.Equal(t, 5*time.Second, cfg.API.Timeout)
	require.Equal(t, "memory", cfg.Prefs.Driver)
	require.Equal(t, 10*time.Minute, cfg.Locales.CacheTTL)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, 9090, cfg.Transport.Port)
	require.Equal(t, "stdio", cfg.Transport.Mode)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("TERMSTATE_CONFIG_PATH", "")
	t.Setenv("TERMSTATE_API_TIMEOUT", "soon")

	_, err := Load()
	require.ErrorContains(t, err, "parse env")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Prefs.Driver = "redis"
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Transport.Mode = "grpc"
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.API.BaseURL = ""
	require.Error(t, cfg.Validate())
}

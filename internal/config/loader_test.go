package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-file.toml"))
	require.NoError(t, err)

	assert.Equal(t, "https://gamma-api.polymarket.com", cfg.Gamma.Host)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout.Duration)
	assert.Equal(t, "serve", cfg.Mode)
	require.NoError(t, cfg.Validate())
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
mode = "get"
request_timeout = "5s"

[gamma]
host = "https://gamma.example.test"
`), 0o600))

	t.Setenv("PMCP_STRAPI_HOST", "https://strapi.example.test")
	t.Setenv("PMCP_REQUEST_TIMEOUT", "10s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://gamma.example.test", cfg.Gamma.Host)
	assert.Equal(t, "https://strapi.example.test", cfg.Strapi.Host)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout.Duration, "env wins over file")
	assert.Equal(t, "get", cfg.Mode)
}

func TestLegacyAPIKeyAlias(t *testing.T) {
	t.Setenv("POLYMARKET_API_KEY", "legacy-key")
	t.Setenv("PMCP_CLOB_API_KEY", "clob-key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "legacy-key", cfg.Gamma.APIKey)
	assert.Equal(t, "clob-key", cfg.Clob.APIKey, "specific variable wins over the alias")
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Defaults()
	cfg.Mode = "replay"
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.RequestTimeout.Duration = 0
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.LogLevel = "trace"
	assert.Error(t, cfg.Validate())
}

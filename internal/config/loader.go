package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies PMCP_* environment variable overrides, and
// returns the final Config. The file is optional: a missing file leaves the
// defaults in place, since the server is usually configured entirely by
// environment when launched by an MCP client. The returned Config has NOT
// been validated; the caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("config: decode %s: %w", path, err)
			}
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known PMCP_* environment variables and
// overwrites the corresponding Config fields when a variable is set. This
// lets operators inject endpoints and keys at deploy time without touching
// the TOML file. POLYMARKET_API_KEY is honored as a legacy alias that sets
// the key on both authenticated providers at once.
func applyEnvOverrides(cfg *Config) {
	// ── Gamma ──
	setStr(&cfg.Gamma.Host, "PMCP_GAMMA_HOST")
	setStr(&cfg.Gamma.APIKey, "POLYMARKET_API_KEY") // legacy alias
	setStr(&cfg.Gamma.APIKey, "PMCP_GAMMA_API_KEY")

	// ── Strapi ──
	setStr(&cfg.Strapi.Host, "PMCP_STRAPI_HOST")
	setStr(&cfg.Strapi.APIKey, "PMCP_STRAPI_API_KEY")

	// ── Order book ──
	setStr(&cfg.Clob.Host, "PMCP_CLOB_HOST")
	setStr(&cfg.Clob.WSHost, "PMCP_CLOB_WS_HOST")
	setStr(&cfg.Clob.APIKey, "POLYMARKET_API_KEY") // legacy alias
	setStr(&cfg.Clob.APIKey, "PMCP_CLOB_API_KEY")

	// ── Top-level ──
	setDuration(&cfg.RequestTimeout, "PMCP_REQUEST_TIMEOUT")
	setStr(&cfg.Mode, "PMCP_MODE")
	setStr(&cfg.LogLevel, "PMCP_LOG_LEVEL")
}

// ---------------------------------------------------------------------------
// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.
// ---------------------------------------------------------------------------

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			dst.Duration = d
		}
	}
}

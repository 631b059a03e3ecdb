// Package config defines the configuration for the market-data server and
// provides validation helpers. Provider endpoints and keys are explicit
// values handed to each adapter's constructor at wire time, never ambient
// globals.
package config

import (
	"fmt"
	"time"

	"github.com/predictionlabs/polymarket-mcp/internal/platform"
)

// Config is the root configuration structure. Fields are populated from a
// TOML file and then optionally overridden by PMCP_* environment variables.
type Config struct {
	Gamma  ProviderConfig `toml:"gamma"`
	Strapi ProviderConfig `toml:"strapi"`
	Clob   ClobConfig     `toml:"clob"`

	// RequestTimeout bounds every upstream call. Past it, a fetch reports
	// the source as unreachable.
	RequestTimeout duration `toml:"request_timeout"`

	Mode     string `toml:"mode"`
	LogLevel string `toml:"log_level"`
}

// ProviderConfig holds one REST provider's endpoint and optional API key.
type ProviderConfig struct {
	Host   string `toml:"host"`
	APIKey string `toml:"api_key"`
}

// ClobConfig holds the order-book API endpoints.
type ClobConfig struct {
	Host   string `toml:"host"`
	WSHost string `toml:"ws_host"`
	APIKey string `toml:"api_key"`
}

// duration is a wrapper around time.Duration that supports TOML string
// decoding (e.g. "30s", "1m").
type duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler so the TOML decoder can
// parse duration strings.
func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler for round-trip encoding.
func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Defaults returns the built-in configuration: production hosts, no API
// keys, MCP serve mode.
func Defaults() Config {
	return Config{
		Gamma: ProviderConfig{
			Host: "https://gamma-api.polymarket.com",
		},
		Strapi: ProviderConfig{
			Host: "https://strapi-matic.poly.market",
		},
		Clob: ClobConfig{
			Host:   "https://clob.polymarket.com",
			WSHost: "wss://ws-subscriptions-clob.polymarket.com/ws/market",
		},
		RequestTimeout: duration{platform.RequestTimeout},
		Mode:           "serve",
		LogLevel:       "info",
	}
}

// Validate checks the configuration for values that would only fail later
// at wire or request time.
func (c *Config) Validate() error {
	if c.Gamma.Host == "" {
		return fmt.Errorf("config: gamma.host must not be empty")
	}
	if c.Strapi.Host == "" {
		return fmt.Errorf("config: strapi.host must not be empty")
	}
	if c.Clob.Host == "" {
		return fmt.Errorf("config: clob.host must not be empty")
	}
	if c.RequestTimeout.Duration <= 0 {
		return fmt.Errorf("config: request_timeout must be positive, got %s", c.RequestTimeout.Duration)
	}
	switch c.Mode {
	case "serve", "get", "watch":
	default:
		return fmt.Errorf("config: unsupported mode %q", c.Mode)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unsupported log_level %q", c.LogLevel)
	}
	return nil
}

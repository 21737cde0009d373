// Package config handles configuration for the account-shell CLI,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the Shopfront CLI.
//
// Fields:
//   - StoreBaseURL: base URL of the remote profile store (REST).
//   - RequestTimeout: per-request HTTP timeout.
//   - OnlineCheckInterval: how often the client probes store reachability.
//   - SessionTokenValidity: lifetime of the locally issued session marker.
type Config struct {
	StoreBaseURL         string
	RequestTimeout       time.Duration
	OnlineCheckInterval  time.Duration
	SessionTokenValidity time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.SessionTokenValidity = 24 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

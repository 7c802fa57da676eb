// Package config resolves the client's runtime settings once at startup.
//
// Sources are applied in order, later ones winning:
// defaults -> JSON file (-c/-config) -> environment -> command-line flags.
package config

import "time"

// Config holds runtime settings for the assistant client.
//
// Fields:
//   - BaseURL: base address of the backend API.
//   - UseSimulatedBackend: when true, every request is served by the
//     simulated backend and the live transport is never invoked.
//   - RequestTimeout: fixed deadline for live calls.
type Config struct {
	BaseURL             string
	UseSimulatedBackend bool
	RequestTimeout      time.Duration
}

// LoadDefaults populates c with sensible defaults. The simulated backend
// stays on by default so the client works without a reachable server;
// flip it off via config once a live deployment exists.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8000"
	c.UseSimulatedBackend = true
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// Package config handles configuration for the marketplace CLI, including
// defaults, JSON overlay, environment overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the marketplace CLI.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite database.
//   - SimulatedLatency: artificial delay applied to login, signup, and
//     product saves to emulate a real backend round trip.
type Config struct {
	DatabaseDSN      string
	SimulatedLatency time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "market.db"
	c.SimulatedLatency = 500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is a DTO for the environment overlay.
type envConfig struct {
	DatabaseDSN      string        `env:"MARKET_DATABASE_DSN"`
	SimulatedLatency time.Duration `env:"MARKET_SIMULATED_LATENCY"`
}

// parseEnv overlays cfg with values from MARKET_* environment variables.
// Unset variables leave the current values untouched.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.DatabaseDSN != "" {
		cfg.DatabaseDSN = ec.DatabaseDSN
	}
	if ec.SimulatedLatency != 0 {
		cfg.SimulatedLatency = ec.SimulatedLatency
	}
}

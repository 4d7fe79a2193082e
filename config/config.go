package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings read from the environment.
// Game mechanics live in constants.go; only deployment knobs go here.
type Config struct {
	Host          string  `env:"OVERLAY_HOST" envDefault:"0.0.0.0"`
	Port          string  `env:"OVERLAY_PORT" envDefault:"8080"`
	SalaryPerHour float64 `env:"SALARY_PER_HOUR" envDefault:"3000"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Package config centralises configuration parsing for the roster service.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures runtime configuration values. Everything comes from the
// environment, with defaults suitable for local dev.
type Config struct {
	HTTPAddress         string        `env:"HTTP_ADDRESS" envDefault:":8080"`
	StaticDir           string        `env:"STATIC_DIR" envDefault:"web/static"`
	SeedFile            string        `env:"SEED_FILE"`
	CapacityEnforcement bool          `env:"CAPACITY_ENFORCEMENT" envDefault:"true"`
	AllowedOrigin       string        `env:"ALLOWED_ORIGIN" envDefault:"*"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	ReadTimeout         time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout        time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout         time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Package config loads crosslayout defaults from the environment.
//
// Command-line flags override every value loaded here.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds environment-provided defaults for the CLI and the server.
type Config struct {
	Verbose bool     `env:"CROSSLAYOUT_VERBOSE"`
	NoColor bool     `env:"CROSSLAYOUT_NO_COLOR"`
	Formats []string `env:"CROSSLAYOUT_FORMATS" envSeparator:"," envDefault:"svg"`
	Cols    int      `env:"CROSSLAYOUT_COLS" envDefault:"80"`
	Rows    int      `env:"CROSSLAYOUT_ROWS" envDefault:"24"`

	Addr         string        `env:"CROSSLAYOUT_ADDR" envDefault:"127.0.0.1:8080"`
	MaxBodyBytes int64         `env:"CROSSLAYOUT_MAX_BODY_BYTES" envDefault:"1048576"`
	ReadTimeout  time.Duration `env:"CROSSLAYOUT_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"CROSSLAYOUT_WRITE_TIMEOUT" envDefault:"30s"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Package config loads the schemacheck settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrParsingConfig = errors.New("failed to parse config")
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds the schemacheck settings.
type Config struct {
	// Input is the cars-data.json path; "-" reads stdin.
	Input         string     `env:"INPUT" envDefault:"cars-data.json"`
	FailOnWarning bool       `env:"FAIL_ON_WARNING" envDefault:"false"`
	Schema        bool       `env:"SCHEMA" envDefault:"false"`
	LogFormat     string     `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel      slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// Prefix is prepended to every variable name, e.g. SCHEMACHECK_INPUT.
const Prefix = "SCHEMACHECK_"

// Load reads a .env file if one exists, then parses the environment.
func Load() (Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()
	return Parse(env.Options{Prefix: Prefix})
}

// Parse parses the environment with opts. Tests pass Environment to avoid
// touching the process environment.
func Parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if cfg.Input == "" {
		return Config{}, fmt.Errorf("%w: input must not be empty", ErrInvalidConfig)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("%w: log format %q must be text or json", ErrInvalidConfig, cfg.LogFormat)
	}
	return cfg, nil
}

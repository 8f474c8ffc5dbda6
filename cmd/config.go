package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"packexpress/internal/pkg/errs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process settings. They only shape diagnostics; quote
// limits and prices are not configurable.
type Config struct {
	LogLevel  string `env:"PACKEXPRESS_LOG_LEVEL"  envDefault:"warn"`
	LogFormat string `env:"PACKEXPRESS_LOG_FORMAT" envDefault:"text"`
}

// LoadConfig loads envFile into the environment when it exists, then parses
// Config from the environment. Variables already set take precedence over
// the file. A missing envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the log level and format are supported.
func (c Config) Validate() error {
	var levelErr, formatErr error

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		levelErr = errs.NewValueIsInvalidErrorWithCause(
			"log level",
			fmt.Errorf("%q must be 'debug', 'info', 'warn', or 'error'", c.LogLevel),
		)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		formatErr = errs.NewValueIsInvalidErrorWithCause(
			"log format",
			fmt.Errorf("%q must be 'text' or 'json'", c.LogFormat),
		)
	}

	return errors.Join(levelErr, formatErr)
}

// Package config loads server settings from a .env file, the environment and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all server configuration.
type Config struct {
	Port            int           `env:"PORT"             envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT"       envDefault:"text"`
	TipSteps        int           `env:"TIP_STEPS"        envDefault:"0"`
	MaxSplit        int           `env:"MAX_SPLIT"        envDefault:"100"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads envFiles (".env" when none are given) into the environment,
// parses the environment into a Config and applies flag overrides from args.
func Load(args []string, envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Debug("No .env file loaded, using environment variables", "error", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("tipsplit-server", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text or json)")
	fs.IntVar(&cfg.TipSteps, "tip-steps", cfg.TipSteps, "Intermediate tip slider stops; 0 for continuous")
	fs.IntVar(&cfg.MaxSplit, "max-split", cfg.MaxSplit, "Largest number of people a request may split between")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr is the listen address for the configured port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.TipSteps < 0 {
		return errors.New("tip steps cannot be negative")
	}
	if c.MaxSplit < 1 {
		return fmt.Errorf("max split %d must be at least 1", c.MaxSplit)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	return nil
}

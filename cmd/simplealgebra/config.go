// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is read from the environment on every invocation.
type Config struct {
	LogLevel      string  `env:"SIMPLEALGEBRA_LOG_LEVEL" envDefault:"info"`
	Workers       int     `env:"SIMPLEALGEBRA_WORKERS" envDefault:"0"`
	ZeroTolerance float64 `env:"SIMPLEALGEBRA_ZERO_TOLERANCE" envDefault:"1e-12"`
}

// parseConfig loads Config from environment variables.
func parseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Workers < 0 {
		return Config{}, fmt.Errorf("parse env: SIMPLEALGEBRA_WORKERS=%d must be >= 0", cfg.Workers)
	}
	if cfg.ZeroTolerance < 0 {
		return Config{}, fmt.Errorf("parse env: SIMPLEALGEBRA_ZERO_TOLERANCE=%v must be >= 0", cfg.ZeroTolerance)
	}

	return cfg, nil
}

// newLogger builds a production logger at cfg.LogLevel, or debug when
// verbose is set.
func newLogger(cfg Config, verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

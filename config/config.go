// Package config holds the run configuration of the reconstruction tools.
package config

import (
	"fmt"
	"math/big"
	"os"
	"runtime"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/izouxv/goShamir/field"
	"github.com/izouxv/goShamir/shamir"
)

// Environment variables read by FromEnv.
const (
	EnvStrategy = "SHAMIR_STRATEGY"
	EnvModulus  = "SHAMIR_MODULUS"
	EnvWorkers  = "SHAMIR_WORKERS"
	EnvPassword = "SHAMIR_PASSWORD"
	EnvLogLevel = "SHAMIR_LOG_LEVEL"
)

// Output formats.
const (
	FormatDecimal = "dec"
	FormatHex     = "hex"
)

// Config is the configuration of a batch run.
type Config struct {
	// Strategy is "rational", "fixed" or "dynamic".
	Strategy string
	// Modulus is a registered modulus name or a decimal prime, used by "fixed".
	Modulus string
	// Margin and Rounds tune the "dynamic" modulus search.
	Margin int64
	Rounds int

	Workers int
	// Format is FormatDecimal or FormatHex.
	Format string
	// Digest appends the SHA3-256 fingerprint of each secret.
	Digest bool

	// Password opens sealed documents.
	Password string
	LogLevel string
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Strategy: shamir.StrategyFixed.String(),
		Modulus:  field.Default,
		Margin:   shamir.DefaultMargin.Int64(),
		Rounds:   shamir.DefaultRounds,
		Workers:  runtime.NumCPU(),
		Format:   FormatDecimal,
		LogLevel: "warn",
	}
}

// FromEnv overlays SHAMIR_* environment variables onto c.
func (c *Config) FromEnv() error {
	if v, ok := os.LookupEnv(EnvStrategy); ok {
		c.Strategy = v
	}
	if v, ok := os.LookupEnv(EnvModulus); ok {
		c.Modulus = v
	}
	if v, ok := os.LookupEnv(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		c.Workers = n
	}
	if v, ok := os.LookupEnv(EnvPassword); ok {
		c.Password = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	return nil
}

// Validate checks c for consistency.
func (c *Config) Validate() error {
	if _, err := c.Options(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Format != FormatDecimal && c.Format != FormatHex {
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Options converts c into reconstruction options.
func (c *Config) Options() (shamir.Options, error) {
	strategy, err := shamir.ParseStrategy(c.Strategy)
	if err != nil {
		return shamir.Options{}, err
	}
	opts := shamir.Options{Strategy: strategy}

	switch strategy {
	case shamir.StrategyFixed:
		p, err := field.Parse(c.Modulus)
		if err != nil {
			return shamir.Options{}, err
		}
		if _, err := shamir.NewModular(p); err != nil {
			return shamir.Options{}, err
		}
		opts.Modulus = p
	case shamir.StrategyDynamic:
		if c.Margin < 0 {
			return shamir.Options{}, fmt.Errorf("margin must be non-negative, got %d", c.Margin)
		}
		if c.Rounds < 1 {
			return shamir.Options{}, fmt.Errorf("rounds must be at least 1, got %d", c.Rounds)
		}
		opts.Margin = big.NewInt(c.Margin)
		opts.Rounds = c.Rounds
	}
	return opts, nil
}

// Logger builds a console logger writing to stderr at c.LogLevel.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Development = false
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// SPDX-License-Identifier: MIT

// Package config loads linsteps settings.
//
// Sources are layered, later ones winning: built-in defaults, an optional
// TOML file, then LINSTEPS_* environment variables. Command-line flags are
// applied on top by the caller.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/linsteps/calc"
)

// PathEnv names the variable consulted when no config path is given.
const PathEnv = "LINSTEPS_CONFIG"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the complete application configuration.
// Env tags carry no defaults: an unset variable leaves the field as loaded.
type Config struct {
	Language        string `toml:"language" env:"LINSTEPS_LANG"`
	Output          string `toml:"output" env:"LINSTEPS_OUTPUT"`
	MaxCofactorSize int    `toml:"max_cofactor_size" env:"LINSTEPS_MAX_COFACTOR_SIZE"`
	MaxExponent     int    `toml:"max_exponent" env:"LINSTEPS_MAX_EXPONENT"`
	LogLevel        string `toml:"log_level" env:"LINSTEPS_LOG_LEVEL"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Language:        "en",
		Output:          OutputText,
		MaxCofactorSize: calc.DefaultMaxCofactorSize,
		MaxExponent:     calc.DefaultMaxExponent,
		LogLevel:        "warn",
	}
}

// Load builds the configuration from defaults, the TOML file at path
// (or $LINSTEPS_CONFIG when path is empty; no file is fine) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path != "" {
		path = os.ExpandEnv(path)
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseEnv applies LINSTEPS_* environment variables to target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Validate rejects values no command can run with.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("config: unknown output %q (want text, json or yaml)", c.Output)
	}
	if c.MaxCofactorSize < 1 {
		return fmt.Errorf("config: max_cofactor_size must be >= 1, got %d", c.MaxCofactorSize)
	}
	if c.MaxExponent < 0 {
		return fmt.Errorf("config: max_exponent must be >= 0, got %d", c.MaxExponent)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel parses LogLevel (debug, info, warn, error; case-insensitive).
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("config: log_level: %w", err)
	}

	return lvl, nil
}

// CalcOptions translates the limits into engine options.
func (c Config) CalcOptions() []calc.Option {
	return []calc.Option{
		calc.WithMaxCofactorSize(c.MaxCofactorSize),
		calc.WithMaxExponent(c.MaxExponent),
	}
}

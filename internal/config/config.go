// Package config provides Viper-based configuration loading for the duel CLI.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// MatchConfig holds match-level rules.
type MatchConfig struct {
	// MaxRounds is the total rounds played before forced termination.
	MaxRounds int `mapstructure:"max_rounds"`
}

// OpponentConfig holds the automated opponent's tunables.
type OpponentConfig struct {
	// Aggression is the probability in [0,1] that the opponent plays its
	// bomb when the heuristic considers it eligible.
	Aggression float64 `mapstructure:"aggression"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Match    MatchConfig    `mapstructure:"match"`
	Opponent OpponentConfig `mapstructure:"opponent"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateMatch(c.Match); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateOpponent(c.Opponent); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateMatch(m MatchConfig) error {
	if m.MaxRounds < 1 {
		return fmt.Errorf("match.max_rounds must be >= 1, got %d", m.MaxRounds)
	}
	return nil
}

func validateOpponent(o OpponentConfig) error {
	if o.Aggression < 0 || o.Aggression > 1 {
		return fmt.Errorf("opponent.aggression must be in [0,1], got %v", o.Aggression)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with RPSDUEL_ prefix
	v.SetEnvPrefix("RPSDUEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when no config file is supplied.
//
// Postcondition: Default().Validate() == nil.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := LoadFromViper(v)
	if err != nil {
		panic("config: default configuration is invalid: " + err.Error())
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("match.max_rounds", 3)

	v.SetDefault("opponent.aggression", 0.25)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

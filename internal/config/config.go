// SPDX-License-Identifier: MIT

// Package config loads molbit settings from an optional YAML file and
// MOLBIT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/molaudionet/molbit/level"
	"github.com/molaudionet/molbit/score"
)

// ErrInvalidConfig indicates a setting outside its accepted range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is prepended to upper-cased keys: log.level -> MOLBIT_LOG_LEVEL.
const EnvPrefix = "MOLBIT"

// Config holds all application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Levels  LevelsConfig  `mapstructure:"levels"`
	Scoring ScoringConfig `mapstructure:"scoring"`
}

// LogConfig selects the zap level and encoder (console or json).
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LevelsConfig points at a YAML level catalog; empty means the built-in six.
type LevelsConfig struct {
	File string `mapstructure:"file"`
}

// ScoringConfig tunes the completeness scorer and the level pass threshold.
type ScoringConfig struct {
	OverbondPenalty float64 `mapstructure:"overbond_penalty"`
	PassThreshold   float64 `mapstructure:"pass_threshold"`
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	return Config{
		Log:     LogConfig{Level: "info", Format: "console"},
		Scoring: ScoringConfig{OverbondPenalty: score.DefaultOverbondPenalty, PassThreshold: level.DefaultPassThreshold},
	}
}

// Validate reports every out-of-range setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	var problems []string

	switch c.Log.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("log.format %q is not one of console, json", c.Log.Format))
	}
	if p := c.Scoring.OverbondPenalty; p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		problems = append(problems, fmt.Sprintf("scoring.overbond_penalty %g must be a non-negative number", p))
	}
	if t := c.Scoring.PassThreshold; !(t > 0 && t <= 100) {
		problems = append(problems, fmt.Sprintf("scoring.pass_threshold %g is outside (0, 100]", t))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}

// Load reads configuration from path (skipped when empty) and the
// environment, then validates it.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it during
// Unmarshal.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("levels.file", d.Levels.File)
	v.SetDefault("scoring.overbond_penalty", d.Scoring.OverbondPenalty)
	v.SetDefault("scoring.pass_threshold", d.Scoring.PassThreshold)
}

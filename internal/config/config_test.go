// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, 30.0, cfg.Scoring.OverbondPenalty)
	assert.Equal(t, 95.0, cfg.Scoring.PassThreshold)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "molbit.yaml")
	doc := []byte("log:\n  level: debug\nlevels:\n  file: levels.yaml\nscoring:\n  overbond_penalty: 10\n")
	require.NoError(t, os.WriteFile(path, doc, 0o600))
	t.Setenv("MOLBIT_LOG_FORMAT", "json")
	t.Setenv("MOLBIT_SCORING_PASS_THRESHOLD", "80")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "levels.yaml", cfg.Levels.File)
	assert.Equal(t, 10.0, cfg.Scoring.OverbondPenalty)
	assert.Equal(t, 80.0, cfg.Scoring.PassThreshold)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("MOLBIT_SCORING_OVERBOND_PENALTY", "-1")

	_, err := Load("")
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "overbond_penalty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string // empty = valid
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero penalty", func(c *Config) { c.Scoring.OverbondPenalty = 0 }, ""},
		{"threshold 100", func(c *Config) { c.Scoring.PassThreshold = 100 }, ""},
		{"negative penalty", func(c *Config) { c.Scoring.OverbondPenalty = -5 }, "overbond_penalty"},
		{"zero threshold", func(c *Config) { c.Scoring.PassThreshold = 0 }, "pass_threshold"},
		{"threshold too high", func(c *Config) { c.Scoring.PassThreshold = 120 }, "pass_threshold"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

// SPDX-License-Identifier: MIT

// Command molbit exercises the molecule-building core from the terminal:
// list elements and levels, replay a play script through a session, or
// score an ad-hoc structure.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/molaudionet/molbit/internal/config"
	"github.com/molaudionet/molbit/internal/logging"
	"github.com/molaudionet/molbit/level"
	"github.com/molaudionet/molbit/score"
	"github.com/molaudionet/molbit/session"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app carries state shared by subcommands once PersistentPreRunE has run.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "molbit",
		Short:         "Build molecules atom by atom and check them against level objectives",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file path (optional)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override log.level")

	rootCmd.AddCommand(
		newElementsCmd(a),
		newLevelsCmd(a),
		newPlayCmd(a),
		newCheckCmd(a),
	)

	return rootCmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger

	return nil
}

// catalog loads file when set, else levels.file from config, else the
// built-in levels.
func (a *app) catalog(file string) (*level.Catalog, error) {
	if file == "" {
		file = a.cfg.Levels.File
	}
	if file == "" {
		return level.Default(), nil
	}
	cat, err := level.LoadFile(file, nil)
	if err != nil {
		return nil, err
	}
	a.log.Debug("level catalog loaded", zap.String("file", file), zap.Int("levels", cat.Len()))

	return cat, nil
}

// matcher applies the scoring section of the config.
func (a *app) matcher(cat *level.Catalog) (*level.Matcher, error) {
	scorer, err := score.New(score.WithOverbondPenalty(a.cfg.Scoring.OverbondPenalty))
	if err != nil {
		return nil, err
	}

	return level.NewMatcher(
		level.WithPassThreshold(a.cfg.Scoring.PassThreshold),
		level.WithScorer(scorer),
		level.WithCatalog(cat),
	)
}

func (a *app) newSession(cat *level.Catalog, metrics *session.Metrics) (*session.Session, error) {
	m, err := a.matcher(cat)
	if err != nil {
		return nil, err
	}

	return session.New(
		session.WithCatalog(cat),
		session.WithMatcher(m),
		session.WithLogger(a.log),
		session.WithMetrics(metrics),
	)
}

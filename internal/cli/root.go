// SPDX-License-Identifier: MIT

// Package cli implements the tswarp command tree.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tswarp/aligner"
	"github.com/katalvlaran/tswarp/internal/config"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string

	cfg      *config.Config
	logger   *slog.Logger
	registry *aligner.Registry
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{registry: aligner.Default()}

	root := &cobra.Command{
		Use:   "tswarp",
		Short: "tswarp - dynamic time warping toolkit",
		Long: `tswarp aligns, compares and classifies time series.

Commands:
  aligners    List registered aligners
  align       Align two series and print the cost and warping path
  pairwise    Compute a DTW distance matrix over a dataset
  classify    Fit a summary-feature classifier and label a test set
  generate    Write a synthetic labelled dataset
  version     Show version info

Datasets are YAML files:

  series:
    - label: up
      values: [0, 1, 2, 3]
    - label: loop
      values: [[0, 1], [1, 0]]

Settings are read from tswarp.yaml when present; flags override them.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.FileName, "Config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	root.AddCommand(
		a.alignersCmd(),
		a.alignCmd(),
		a.pairwiseCmd(),
		a.classifyCmd(),
		newGenerateCmd(),
		newVersionCmd(),
	)

	return root
}

// setup loads the config and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("config loaded", slog.String("path", a.configPath), slog.String("aligner", cfg.Aligner))

	return nil
}

// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tswarp/aligner"
	"github.com/katalvlaran/tswarp/dtw"
)

// engineFlags are the alignment settings shared by align and pairwise.
type engineFlags struct {
	aligner  string
	cost     string
	window   int
	noWindow bool
}

func (f *engineFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.aligner, "aligner", "a", "", "Aligner name (see 'tswarp aligners')")
	cmd.Flags().StringVar(&f.cost, "cost", "", "Pointwise cost: squared, manhattan or euclidean")
	cmd.Flags().IntVarP(&f.window, "window", "w", 0, "Sakoe-Chiba window radius")
	cmd.Flags().BoolVar(&f.noWindow, "no-window", false, "Ignore any configured window")
}

// engine is a resolved aligner plus its call arguments.
type engine struct {
	entry aligner.Entry
	cost  dtw.CostFunc
	opts  []dtw.Option
}

// resolve overlays the flags on the loaded config and looks up the aligner.
func (a *app) resolve(cmd *cobra.Command, f *engineFlags) (*engine, error) {
	cfg := *a.cfg
	if f.aligner != "" {
		cfg.Aligner = f.aligner
	}
	if f.cost != "" {
		cfg.Cost = f.cost
	}
	if cmd.Flags().Changed("window") {
		w := f.window
		cfg.Window = &w
	}
	if f.noWindow {
		cfg.Window = nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	entry, err := a.registry.Lookup(cfg.Aligner)
	if err != nil {
		return nil, err
	}
	cost, err := cfg.CostFunc()
	if err != nil {
		return nil, err
	}

	return &engine{entry: entry, cost: cost, opts: cfg.DTWOptions()}, nil
}

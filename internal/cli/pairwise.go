// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tswarp/distance"
	"github.com/katalvlaran/tswarp/internal/dataset"
)

func (a *app) pairwiseCmd() *cobra.Command {
	var (
		ef          engineFlags
		workers     int
		showMetrics bool
	)
	cmd := &cobra.Command{
		Use:   "pairwise <dataset> [against]",
		Short: "Compute a DTW distance matrix",
		Long: `Compute DTW distances between every pair of series in a dataset, or
between every series of <dataset> (rows) and every series of [against]
(columns).

Examples:
  tswarp pairwise set.yaml                 # symmetric self-distance matrix
  tswarp pairwise train.yaml test.yaml     # cross-distance matrix
  tswarp pairwise set.yaml -j 8 --metrics  # 8 workers, dump metrics to stderr`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.resolve(cmd, &ef)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}

			d, err := eng.entry.Factory.New(eng.cost, eng.opts...)
			if err != nil {
				return err
			}
			opts := []distance.PairwiseOption{
				distance.WithWorkers(workers),
				distance.WithLogger(a.logger),
			}
			reg := prometheus.NewRegistry()
			if showMetrics {
				m, err := distance.NewMetrics(reg)
				if err != nil {
					return err
				}
				opts = append(opts, distance.WithMetrics(m))
			}
			pw, err := distance.NewPairwise(d, opts...)
			if err != nil {
				return err
			}

			xs, err := dataset.Load(args[0])
			if err != nil {
				return err
			}
			var result mat.Matrix
			if len(args) == 2 {
				ys, err := dataset.Load(args[1])
				if err != nil {
					return err
				}
				result, err = pw.Cross(cmd.Context(), xs.Sequences(), ys.Sequences())
				if err != nil {
					return err
				}
			} else {
				result, err = pw.Matrix(cmd.Context(), xs.Sequences())
				if err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%.6g\n", mat.Formatted(result, mat.Squeeze()))
			if showMetrics {
				return writeMetrics(cmd.ErrOrStderr(), reg)
			}

			return nil
		},
	}
	ef.bind(cmd)
	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "Concurrent distance computations (<1 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Write Prometheus metrics to stderr when done")

	return cmd
}

// writeMetrics renders every gathered family in the text exposition format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tswarp/internal/dataset"
	"github.com/katalvlaran/tswarp/internal/render"
)

func (a *app) alignCmd() *cobra.Command {
	var (
		ef         engineFlags
		showPath   bool
		showMatrix bool
		plotPath   string
		channel    int
	)
	cmd := &cobra.Command{
		Use:   "align <dataset> [i j]",
		Short: "Align two series and print the cost and warping path",
		Long: `Align series i and j of a dataset (default 0 and 1).

Examples:
  tswarp align set.yaml               # series 0 against series 1
  tswarp align set.yaml 2 5 --path    # also print the warping path
  tswarp align set.yaml -w 3 --matrix # banded, with the cost table
  tswarp align set.yaml --plot a.png  # draw the warping links`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("expected <dataset> or <dataset> <i> <j>, got %d args", len(args))
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.resolve(cmd, &ef)
			if err != nil {
				return err
			}
			ds, err := dataset.Load(args[0])
			if err != nil {
				return err
			}

			i, j := 0, 1
			if len(args) == 3 {
				if i, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("index i: %w", err)
				}
				if j, err = strconv.Atoi(args[2]); err != nil {
					return fmt.Errorf("index j: %w", err)
				}
			}
			x, err := ds.Sequence(i)
			if err != nil {
				return err
			}
			y, err := ds.Sequence(j)
			if err != nil {
				return err
			}

			al, err := eng.entry.Engine.Align(x, y, eng.cost, eng.opts...)
			if err != nil {
				return fmt.Errorf("align %d with %d: %w", i, j, err)
			}
			a.logger.Debug("aligned", "i", i, "j", j, "len_i", x.Len(), "len_j", y.Len(), "steps", len(al.Path))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "aligner: %s\n", eng.entry.Name)
			fmt.Fprintf(out, "cost:    %g\n", al.Cost)
			if showPath {
				steps := make([]string, len(al.Path))
				for k, c := range al.Path {
					steps[k] = fmt.Sprintf("(%d,%d)", c.I, c.J)
				}
				fmt.Fprintf(out, "path:    %s\n", strings.Join(steps, " "))
			}
			if showMatrix {
				fmt.Fprintf(out, "matrix:\n%g\n", mat.Formatted(al.Matrix.Dense(), mat.Squeeze()))
			}
			if plotPath != "" {
				p, err := render.Alignment(x, y, al, channel)
				if err != nil {
					return err
				}
				if err = render.Save(p, plotPath); err != nil {
					return err
				}
				fmt.Fprintf(out, "plot:    %s\n", plotPath)
			}

			return nil
		},
	}
	ef.bind(cmd)
	cmd.Flags().BoolVarP(&showPath, "path", "p", false, "Print the warping path")
	cmd.Flags().BoolVar(&showMatrix, "matrix", false, "Print the accumulated cost table")
	cmd.Flags().StringVar(&plotPath, "plot", "", "Render the alignment to an image (png, svg, pdf)")
	cmd.Flags().IntVar(&channel, "channel", 0, "Channel drawn by --plot")

	return cmd
}

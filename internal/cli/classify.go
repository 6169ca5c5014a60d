// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tswarp/classifier"
	"github.com/katalvlaran/tswarp/internal/dataset"
)

func (a *app) classifyCmd() *cobra.Command {
	var (
		estimator string
		neighbors int
		members   int
		jobs      int
		seed      int64
		proba     bool
	)
	cmd := &cobra.Command{
		Use:   "classify <train> <test>",
		Short: "Fit a summary-feature classifier and label a test set",
		Long: `Fit a SummaryClassifier on the labelled <train> dataset and predict a
label for every series of <test>. When <test> is labelled too, the
accuracy is reported.

Examples:
  tswarp classify train.yaml test.yaml
  tswarp classify train.yaml test.yaml -k 3 --proba
  tswarp classify train.yaml test.yaml --estimator bagging --members 25 --seed 7`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			if cmd.Flags().Changed("estimator") {
				cfg.Classifier.Estimator = estimator
			}
			if cmd.Flags().Changed("neighbors") {
				cfg.Classifier.Neighbors = neighbors
			}
			if cmd.Flags().Changed("members") {
				cfg.Classifier.Members = members
			}
			if cmd.Flags().Changed("jobs") {
				cfg.Classifier.Jobs = jobs
			}
			if cmd.Flags().Changed("seed") {
				cfg.Classifier.Seed = &seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			train, err := dataset.Load(args[0])
			if err != nil {
				return err
			}
			if err = train.RequireLabels(); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			test, err := dataset.Load(args[1])
			if err != nil {
				return err
			}

			clf := classifier.NewSummaryClassifier(cfg.ClassifierOptions(a.logger)...)
			if err = clf.Fit(train.Sequences(), train.Labels()); err != nil {
				return err
			}
			pred, err := clf.Predict(test.Sequences())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprint(tw, "#\tpredicted\tactual")
			if proba {
				for _, c := range clf.Classes() {
					fmt.Fprintf(tw, "\tp(%s)", c)
				}
			}
			fmt.Fprintln(tw)

			labels := test.Labels()
			var probs *mat.Dense
			if proba {
				if probs, err = clf.PredictProba(test.Sequences()); err != nil {
					return err
				}
			}
			correct := 0
			for i, p := range pred {
				actual := labels[i]
				if actual == "" {
					actual = "-"
				}
				if p == labels[i] {
					correct++
				}
				fmt.Fprintf(tw, "%d\t%s\t%s", i, p, actual)
				if proba {
					for k := 0; k < clf.NumClasses(); k++ {
						fmt.Fprintf(tw, "\t%s", strconv.FormatFloat(probs.At(i, k), 'f', 3, 64))
					}
				}
				fmt.Fprintln(tw)
			}
			if err = tw.Flush(); err != nil {
				return err
			}

			if test.HasLabels() {
				fmt.Fprintf(cmd.OutOrStdout(), "accuracy: %d/%d (%.1f%%)\n",
					correct, len(pred), 100*float64(correct)/float64(len(pred)))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&estimator, "estimator", "", `Estimator: "knn" or "bagging" (random-subspace k-NN ensemble)`)
	cmd.Flags().IntVarP(&neighbors, "neighbors", "k", 0, "Neighbours of the k-NN estimator")
	cmd.Flags().IntVar(&members, "members", 0, "Ensemble size of the bagging estimator")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Estimator workers (0 = 1, -1 = all CPUs)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random state of the bagging estimator")
	cmd.Flags().BoolVar(&proba, "proba", false, "Print class probabilities")

	return cmd
}

// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) alignersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aligners",
		Short: "List registered aligners",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range a.registry.Names() {
				marker := " "
				if name == a.cfg.Aligner {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\n", marker, name)
			}

			return nil
		},
	}
}

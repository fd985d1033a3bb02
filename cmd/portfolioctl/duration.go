package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khoahotran/portfolio/internal/domain/experience"
)

func newDurationCmd(agg *experience.Aggregator) *cobra.Command {
	return &cobra.Command{
		Use:     "duration <period>",
		Short:   "Print the duration of a period such as \"Jan 2020 - Mar 2021\"",
		Args:    cobra.ExactArgs(1),
		Example: `  portfolioctl duration "Jan 2020 - Present"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := agg.ComputeDuration(args[0])
			if d == "" {
				d = "(no duration)"
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

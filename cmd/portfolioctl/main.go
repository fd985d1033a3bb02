// Package main implements portfolioctl, an offline tool for checking the
// portfolio content file and previewing the derived experience timeline.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/khoahotran/portfolio/internal/domain/experience"
)

func newRootCmd(now func() time.Time) *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolioctl",
		Short:         "Portfolio content tooling",
		Long:          "portfolioctl validates the portfolio content file and prints the experience timeline the API would serve.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	agg := experience.NewAggregator(now)
	root.AddCommand(
		newValidateCmd(),
		newTimelineCmd(agg),
		newDurationCmd(agg),
	)
	return root
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd(time.Now).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

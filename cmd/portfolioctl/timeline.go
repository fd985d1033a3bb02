package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/khoahotran/portfolio/adapters/content"
	experienceUC "github.com/khoahotran/portfolio/internal/application/usecase/experience"
	"github.com/khoahotran/portfolio/internal/domain/experience"
)

func newTimelineCmd(agg *experience.Aggregator) *cobra.Command {
	var (
		file   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Print the experience timeline grouped by company",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			doc, err := content.Decode(data)
			if err != nil {
				return fmt.Errorf("invalid portfolio file: %w", err)
			}

			timeline := experienceUC.BuildTimeline(agg, doc)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(timeline)
			}
			printTimeline(cmd.OutOrStdout(), timeline)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "data/portfolio.json", "Path to the portfolio content file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the timeline as JSON")
	return cmd
}

func printTimeline(w io.Writer, t *experienceUC.GetTimelineOutput) {
	_, _ = fmt.Fprintf(w, "Years of experience: %d\n", t.YearsOfExperience)
	for _, g := range t.Groups {
		_, _ = fmt.Fprintf(w, "\n%s  (%s, %s)\n", g.Company, g.OverallPeriod, g.Duration)
		for _, r := range g.Roles {
			_, _ = fmt.Fprintf(w, "  %s  %s  %s\n", r.Position, r.Period, r.Duration)
			for _, b := range r.Bullets {
				_, _ = fmt.Fprintf(w, "    - %s\n", b)
			}
		}
	}
}

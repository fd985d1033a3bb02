package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khoahotran/portfolio/adapters/content"
)

func newValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a portfolio content file against its schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}

			doc, err := content.Decode(data)
			if err != nil {
				return fmt.Errorf("invalid portfolio file: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "OK: %d experience records, %d projects\n",
				len(doc.Experience), len(doc.Projects))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "data/portfolio.json", "Path to the portfolio content file")
	return cmd
}

// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/scorecast/internal/dataset"
	"github.com/tomtom215/scorecast/internal/models"
)

func newImportCmd(c *cli) *cobra.Command {
	var (
		opts   dataset.Options
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import the training dataset CSV into the dataset store",
		Long: `Reads a CSV with the columns

  Hours Studied, Previous Scores, Extracurricular Activities,
  Sleep Hours, Sample Question Papers Practiced, Performance Index

in any order. Rows that fail the prediction input rules or carry a
performance index outside 0-100 are skipped and reported.`,
		Example: `  scorectl import --db ./scorecast.duckdb Student_Performance.csv
  scorectl import --replace Student_Performance.csv
  scorectl import --dry-run Student_Performance.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var store dataset.RecordStore
			if !opts.DryRun {
				db, err := c.openDB()
				if err != nil {
					return err
				}
				defer closeDB(db)
				store = db
			}

			stats, err := dataset.NewImporter(store).Import(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd, stats)
			}
			printImportStats(cmd, stats, opts.DryRun)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Replace, "replace", false, "Swap existing records for this file's valid rows in one transaction")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Validate the file without writing to the store")
	cmd.Flags().IntVar(&opts.BatchSize, "batch-size", dataset.DefaultBatchSize, "Rows per insert transaction")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the import report as JSON")
	return cmd
}

func printImportStats(cmd *cobra.Command, stats *models.ImportStats, dryRun bool) {
	out := cmd.OutOrStdout()
	verb := "Imported"
	if dryRun {
		verb = "Validated"
	}
	fmt.Fprintf(out, "%s %d of %d rows from %s (%d skipped) in %s\n",
		verb, stats.RowsImported, stats.RowsRead, stats.File, stats.RowsSkipped, stats.Duration.Round(time.Millisecond))
	for _, e := range stats.Errors {
		fmt.Fprintf(out, "  line %d: %s\n", e.Line, e.Reason)
	}
	if stats.RowsSkipped > len(stats.Errors) {
		fmt.Fprintf(out, "  ... %d more skipped rows not shown\n", stats.RowsSkipped-len(stats.Errors))
	}
}

// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tomtom215/scorecast/internal/database"
	"github.com/tomtom215/scorecast/internal/models"
)

func newRecordsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Browse the imported training dataset",
	}
	cmd.AddCommand(newRecordsListCmd(c), newRecordsSummaryCmd(c))
	return cmd
}

type recordsListFlags struct {
	limit           int
	offset          int
	extracurricular string
	minPerformance  float64
	maxPerformance  float64
	samplePapers    []int
	json            bool
}

func (f *recordsListFlags) filter(cmd *cobra.Command) (database.RecordFilter, error) {
	var filter database.RecordFilter
	if f.extracurricular != "" {
		b, err := strconv.ParseBool(f.extracurricular)
		if err != nil {
			return filter, fmt.Errorf("--extracurricular must be true or false, got %q", f.extracurricular)
		}
		filter.Extracurricular = &b
	}
	if cmd.Flags().Changed("min-performance") {
		filter.MinPerformance = &f.minPerformance
	}
	if cmd.Flags().Changed("max-performance") {
		filter.MaxPerformance = &f.maxPerformance
	}
	for _, n := range f.samplePapers {
		if n < 0 {
			return filter, fmt.Errorf("--sample-papers values must not be negative, got %d", n)
		}
	}
	filter.SamplePapers = f.samplePapers
	return filter, nil
}

func newRecordsListCmd(c *cli) *cobra.Command {
	f := &recordsListFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored records",
		Example: `  scorectl records list --limit 10
  scorectl records list --extracurricular true --min-performance 80
  scorectl records list --sample-papers 0,1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.limit < 1 {
				return fmt.Errorf("--limit must be at least 1, got %d", f.limit)
			}
			if f.offset < 0 {
				return fmt.Errorf("--offset must not be negative, got %d", f.offset)
			}
			filter, err := f.filter(cmd)
			if err != nil {
				return err
			}

			db, err := c.openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			total, err := db.CountRecords(cmd.Context(), filter)
			if err != nil {
				return err
			}
			records, err := db.ListRecords(cmd.Context(), filter, f.limit, f.offset)
			if err != nil {
				return err
			}

			if f.json {
				if records == nil {
					records = []models.StudentRecord{}
				}
				return printJSON(cmd, map[string]interface{}{
					"records": records,
					"pagination": models.PaginationInfo{
						Limit:      f.limit,
						Offset:     f.offset,
						TotalCount: total,
						HasMore:    int64(f.offset+len(records)) < total,
					},
				})
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tHOURS\tPREVIOUS\tEXTRACURRICULAR\tSLEEP\tPAPERS\tPERFORMANCE")
			for _, r := range records {
				fmt.Fprintf(tw, "%d\t%g\t%g\t%t\t%g\t%d\t%g\n",
					r.ID, r.HoursStudied, r.PreviousScores, r.Extracurricular,
					r.SleepHours, r.SamplePapers, r.PerformanceIndex)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d records\n", len(records), total)
			return nil
		},
	}

	cmd.Flags().IntVar(&f.limit, "limit", 20, "Maximum records to show")
	cmd.Flags().IntVar(&f.offset, "offset", 0, "Records to skip")
	cmd.Flags().StringVar(&f.extracurricular, "extracurricular", "", "Filter by extracurricular participation (true/false)")
	cmd.Flags().Float64Var(&f.minPerformance, "min-performance", 0, "Minimum performance index")
	cmd.Flags().Float64Var(&f.maxPerformance, "max-performance", 100, "Maximum performance index")
	cmd.Flags().IntSliceVar(&f.samplePapers, "sample-papers", nil, "Only records with these sample paper counts (comma-separated)")
	cmd.Flags().BoolVar(&f.json, "json", false, "Print records as JSON")
	return cmd
}

func newRecordsSummaryCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show dataset aggregates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := c.openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			s, err := db.Summary(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, s)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Records\t%d\n", s.Count)
			fmt.Fprintf(tw, "Avg hours studied\t%.2f\n", s.AvgHoursStudied)
			fmt.Fprintf(tw, "Avg previous scores\t%.2f\n", s.AvgPreviousScores)
			fmt.Fprintf(tw, "Avg sleep hours\t%.2f\n", s.AvgSleepHours)
			fmt.Fprintf(tw, "Avg sample papers\t%.2f\n", s.AvgSamplePapers)
			fmt.Fprintf(tw, "Extracurricular share\t%.1f%%\n", s.ExtracurricularShare*100)
			fmt.Fprintf(tw, "Performance index\tavg %.2f, min %.2f, max %.2f\n",
				s.AvgPerformanceIndex, s.MinPerformanceIndex, s.MaxPerformanceIndex)
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")
	return cmd
}

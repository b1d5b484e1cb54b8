// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tomtom215/scorecast/internal/models"
	"github.com/tomtom215/scorecast/internal/predict"
	"github.com/tomtom215/scorecast/internal/validation"
)

type predictFlags struct {
	hours           float64
	previous        float64
	extracurricular string
	sleep           float64
	papers          int
	json            bool
}

func newPredictCmd(c *cli) *cobra.Command {
	f := &predictFlags{}

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a performance index for one student",
		Example: `  scorectl predict --hours 4 --previous 85 --extracurricular no --sleep 7 --papers 6
  scorectl predict --model ./model.json --hours 7 --previous 99 --extracurricular yes --sleep 9 --papers 1 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(cmd, c, f)
		},
	}

	cmd.Flags().Float64Var(&f.hours, "hours", 0, "Hours studied per day (0-24)")
	cmd.Flags().Float64Var(&f.previous, "previous", 0, "Previous score (0-100)")
	cmd.Flags().StringVar(&f.extracurricular, "extracurricular", "", "Takes part in extracurricular activities (yes/no)")
	cmd.Flags().Float64Var(&f.sleep, "sleep", 0, "Sleep hours per day (0-24)")
	cmd.Flags().IntVar(&f.papers, "papers", 0, "Sample question papers practiced")
	cmd.Flags().BoolVar(&f.json, "json", false, "Print the result as JSON")
	return cmd
}

// payload includes only the flags that were set so missing inputs are
// reported the same way the API reports missing fields.
func (f *predictFlags) payload(cmd *cobra.Command) map[string]interface{} {
	raw := map[string]interface{}{}
	set := func(flag, field string, v interface{}) {
		if cmd.Flags().Changed(flag) {
			raw[field] = v
		}
	}
	set("hours", models.FieldHoursStudied, f.hours)
	set("previous", models.FieldPreviousScores, f.previous)
	set("extracurricular", models.FieldExtracurricular, f.extracurricular)
	set("sleep", models.FieldSleepHours, f.sleep)
	set("papers", models.FieldSamplePapers, f.papers)
	return raw
}

func runPredict(cmd *cobra.Command, c *cli, f *predictFlags) error {
	model, err := c.loadModel()
	if err != nil {
		return err
	}

	result, err := predict.NewService(model).Predict(cmd.Context(), f.payload(cmd))
	if err != nil {
		var fe *validation.FieldErrors
		if errors.As(err, &fe) {
			printFieldErrors(cmd.ErrOrStderr(), fe)
		}
		return err
	}

	if f.json {
		return printJSON(cmd, result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Predicted performance index: %s\n", result.PredictedPerformanceIndex)
	if len(result.Recommendations) > 0 {
		fmt.Fprintln(out, "\nRecommendations:")
		for _, r := range result.Recommendations {
			fmt.Fprintf(out, "  - %s\n", r)
		}
	}
	if len(result.Tips) > 0 {
		fmt.Fprintln(out, "\nTips:")
		for _, t := range result.Tips {
			fmt.Fprintf(out, "  - %s\n", t)
		}
	}
	return nil
}

func printFieldErrors(w io.Writer, fe *validation.FieldErrors) {
	fmt.Fprintln(w, "Input rejected:")
	for _, field := range fe.Fields() {
		for _, msg := range fe.Get(field) {
			fmt.Fprintf(w, "  %s: %s\n", field, msg)
		}
	}
}

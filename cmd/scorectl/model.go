// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newModelCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Work with model artifacts",
	}

	var asJSON bool
	inspect := &cobra.Command{
		Use:   "inspect",
		Short: "Validate an artifact and print its metadata",
		Long: `Loads the artifact exactly as the server does (schema check, feature
order check, tree structure check) and prints its metadata. A non-zero
exit status means the server would refuse to start with this artifact.`,
		Example: `  scorectl model inspect --model ./performance_model.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := c.loadModel()
			if err != nil {
				return err
			}
			info := model.Info()
			if asJSON {
				return printJSON(cmd, info)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Name\t%s\n", info.Name)
			fmt.Fprintf(tw, "Version\t%s\n", info.Version)
			fmt.Fprintf(tw, "Type\t%s\n", info.Type)
			if info.Trees > 0 {
				fmt.Fprintf(tw, "Trees\t%d\n", info.Trees)
				fmt.Fprintf(tw, "Max depth\t%d\n", info.MaxDepth)
			}
			fmt.Fprintf(tw, "Features\t%s\n", strings.Join(info.Features, ", "))
			fmt.Fprintf(tw, "Path\t%s\n", info.Path)
			fmt.Fprintf(tw, "SHA-256\t%s\n", info.SHA256)
			return tw.Flush()
		},
	}
	inspect.Flags().BoolVar(&asJSON, "json", false, "Print metadata as JSON")

	cmd.AddCommand(inspect)
	return cmd
}

// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/scorecast/internal/config"
	"github.com/tomtom215/scorecast/internal/database"
	"github.com/tomtom215/scorecast/internal/inference"
	"github.com/tomtom215/scorecast/internal/logging"
)

// cli carries the persistent flags and the configuration resolved from them.
type cli struct {
	configPath string
	dbPath     string
	modelPath  string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "scorectl",
		Short: "Scorecast operator CLI",
		Long: `scorectl runs predictions against a model artifact without the HTTP
server, inspects artifacts and manages the training dataset store.

Settings come from the same sources as the server (defaults, config file,
environment). --model and --db override MODEL_PATH and DUCKDB_PATH.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.load,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to config file (overrides CONFIG_PATH env var)")
	root.PersistentFlags().StringVar(&c.dbPath, "db", "", "Path to DuckDB dataset file (overrides DUCKDB_PATH env var)")
	root.PersistentFlags().StringVar(&c.modelPath, "model", "", "Path to model artifact (overrides MODEL_PATH env var)")

	root.AddCommand(
		newPredictCmd(c),
		newImportCmd(c),
		newRecordsCmd(c),
		newModelCmd(c),
		newVersionCmd(),
	)
	return root
}

// load resolves configuration and points logging at stderr so command
// output on stdout stays machine readable.
func (c *cli) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFrom(c.configPath)
	if err != nil {
		return err
	}
	if c.modelPath != "" {
		cfg.Model.Path = c.modelPath
	}
	if c.dbPath != "" {
		cfg.Database.Path = c.dbPath
	}
	c.cfg = cfg

	logCfg := cfg.Logging.ToLoggingConfig()
	logCfg.Format = "console"
	logCfg.Output = cmd.ErrOrStderr()
	logging.Init(logCfg)
	return nil
}

func (c *cli) loadModel() (*inference.Model, error) {
	return inference.Load(c.cfg.Model.Path)
}

// openDB opens the dataset store regardless of DATASET_ENABLED; the flag
// only controls whether the server exposes it.
func (c *cli) openDB() (*database.DB, error) {
	dbCfg := c.cfg.Database
	dbCfg.Enabled = true
	db, err := database.New(&dbCfg)
	if err != nil {
		return nil, fmt.Errorf("open dataset store %s: %w", dbCfg.Path, err)
	}
	return db, nil
}

func closeDB(db *database.DB) {
	if err := db.Close(); err != nil {
		logging.Warn().Err(err).Msg("Error closing dataset store")
	}
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

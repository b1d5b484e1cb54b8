// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tomtom215/scorecast/internal/logging"
	"github.com/tomtom215/scorecast/internal/metrics"
	"github.com/tomtom215/scorecast/internal/models"
)

// DefaultBatchSize is the number of rows written per insert transaction.
const DefaultBatchSize = 1000

// maxReportedErrors caps ImportStats.Errors; RowsSkipped still counts all.
const maxReportedErrors = 100

// RecordStore is the subset of the dataset store the importer writes to.
type RecordStore interface {
	InsertRecords(ctx context.Context, records []models.StudentRecord) (int, error)
	ReplaceRecords(ctx context.Context, records []models.StudentRecord) (int64, error)
}

// Options control a single import run.
type Options struct {
	// Replace swaps the stored records for the file's valid rows in one
	// transaction. Rows are held in memory until the file is read.
	Replace bool

	// DryRun validates every row without touching the store.
	DryRun bool

	// BatchSize defaults to DefaultBatchSize when zero.
	BatchSize int
}

// Importer loads the training dataset from CSV into a RecordStore.
type Importer struct {
	store RecordStore
}

// NewImporter creates an importer writing to store. store may be nil when
// only dry runs are performed.
func NewImporter(store RecordStore) *Importer {
	return &Importer{store: store}
}

// Import reads the CSV file at path.
func (i *Importer) Import(ctx context.Context, path string, opts Options) (*models.ImportStats, error) {
	f, err := os.Open(path) // #nosec G304 -- operator supplied path
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Str("file", path).Msg("Error closing dataset file")
		}
	}()
	return i.ImportReader(ctx, path, f, opts)
}

// ImportReader reads CSV from r. Rows that fail validation are skipped and
// reported; store failures abort the import.
func (i *Importer) ImportReader(ctx context.Context, name string, r io.Reader, opts Options) (*models.ImportStats, error) {
	if !opts.DryRun && i.store == nil {
		return nil, errors.New("import requires a dataset store unless dry run is set")
	}
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	start := time.Now()
	stats := &models.ImportStats{File: name}
	defer func() {
		stats.Duration = time.Since(start)
		metrics.RecordDatasetImport(stats.RowsImported, stats.RowsSkipped)
	}()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return stats, errors.New("dataset is empty")
		}
		return stats, fmt.Errorf("read header: %w", err)
	}
	mapper, err := NewMapper(header)
	if err != nil {
		return stats, err
	}

	replace := opts.Replace && !opts.DryRun
	var pending []models.StudentRecord

	batch := make([]models.StudentRecord, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		switch {
		case replace:
			pending = append(pending, batch...)
		case opts.DryRun:
			stats.RowsImported += len(batch)
		default:
			n, err := i.store.InsertRecords(ctx, batch)
			if err != nil {
				return fmt.Errorf("insert batch: %w", err)
			}
			stats.RowsImported += n
		}
		batch = batch[:0]
		logging.Debug().
			Int("rows_read", stats.RowsRead).
			Int("rows_imported", stats.RowsImported).
			Int("rows_skipped", stats.RowsSkipped).
			Msg("Import progress")
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return stats, fmt.Errorf("read dataset: %w", err)
			}
			stats.RowsRead++
			i.skip(stats, parseErr.Line, parseErr.Err.Error())
			continue
		}

		stats.RowsRead++
		line, _ := cr.FieldPos(0)
		record, err := mapper.ToRecord(row)
		if err != nil {
			i.skip(stats, line, err.Error())
			continue
		}

		batch = append(batch, record)
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return stats, err
			}
		}
	}
	if err := flush(); err != nil {
		return stats, err
	}

	if replace {
		deleted, err := i.store.ReplaceRecords(ctx, pending)
		if err != nil {
			return stats, fmt.Errorf("replace records: %w", err)
		}
		stats.RowsImported = len(pending)
		logging.Info().Int64("deleted", deleted).Msg("Existing dataset records replaced")
	}

	logging.Info().
		Str("file", name).
		Int("rows_read", stats.RowsRead).
		Int("rows_imported", stats.RowsImported).
		Int("rows_skipped", stats.RowsSkipped).
		Bool("dry_run", opts.DryRun).
		Dur("duration", time.Since(start)).
		Msg("Dataset import completed")

	return stats, nil
}

func (i *Importer) skip(stats *models.ImportStats, line int, reason string) {
	stats.RowsSkipped++
	if len(stats.Errors) < maxReportedErrors {
		stats.Errors = append(stats.Errors, models.ImportError{Line: line, Reason: reason})
	}
	logging.Debug().Int("line", line).Str("reason", reason).Msg("Dataset row skipped")
}

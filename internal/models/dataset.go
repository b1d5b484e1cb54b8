// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package models

import "time"

// StudentRecord is one row of the training dataset.
type StudentRecord struct {
	ID               int64     `json:"id"`
	HoursStudied     float64   `json:"hours_studied"`
	PreviousScores   float64   `json:"previous_scores"`
	Extracurricular  bool      `json:"extracurricular"`
	SleepHours       float64   `json:"sleep_hours"`
	SamplePapers     int       `json:"sample_papers"`
	PerformanceIndex float64   `json:"performance_index"`
	ImportedAt       time.Time `json:"imported_at"`
}

// DatasetSummary aggregates the stored dataset.
type DatasetSummary struct {
	Count                int64   `json:"count"`
	AvgHoursStudied      float64 `json:"avg_hours_studied"`
	AvgPreviousScores    float64 `json:"avg_previous_scores"`
	AvgSleepHours        float64 `json:"avg_sleep_hours"`
	AvgSamplePapers      float64 `json:"avg_sample_papers"`
	ExtracurricularShare float64 `json:"extracurricular_share"`
	AvgPerformanceIndex  float64 `json:"avg_performance_index"`
	MinPerformanceIndex  float64 `json:"min_performance_index"`
	MaxPerformanceIndex  float64 `json:"max_performance_index"`
}

// ImportStats reports the outcome of a dataset import.
type ImportStats struct {
	File         string        `json:"file"`
	RowsRead     int           `json:"rows_read"`
	RowsImported int           `json:"rows_imported"`
	RowsSkipped  int           `json:"rows_skipped"`
	Errors       []ImportError `json:"errors,omitempty"`
	Duration     time.Duration `json:"duration_ns"`
}

// ImportError describes a rejected CSV line.
type ImportError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/scorecast/internal/models"
	"github.com/tomtom215/scorecast/internal/validation"
)

// CSV header names of the published student performance dataset.
const (
	ColumnHoursStudied     = "Hours Studied"
	ColumnPreviousScores   = "Previous Scores"
	ColumnExtracurricular  = "Extracurricular Activities"
	ColumnSleepHours       = "Sleep Hours"
	ColumnSamplePapers     = "Sample Question Papers Practiced"
	ColumnPerformanceIndex = "Performance Index"
)

// columnFields maps CSV columns to prediction payload fields.
var columnFields = []struct {
	column string
	field  string
}{
	{ColumnHoursStudied, models.FieldHoursStudied},
	{ColumnPreviousScores, models.FieldPreviousScores},
	{ColumnExtracurricular, models.FieldExtracurricular},
	{ColumnSleepHours, models.FieldSleepHours},
	{ColumnSamplePapers, models.FieldSamplePapers},
}

// Mapper converts CSV rows into StudentRecords. Columns may appear in any
// order; the header decides where each one is read from.
type Mapper struct {
	index map[string]int
}

// NewMapper builds a Mapper from the header row. Every dataset column must
// be present; extra columns are ignored.
func NewMapper(header []string) (*Mapper, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		index[name] = i
	}

	var missing []string
	for _, cf := range columnFields {
		if _, ok := index[cf.column]; !ok {
			missing = append(missing, cf.column)
		}
	}
	if _, ok := index[ColumnPerformanceIndex]; !ok {
		missing = append(missing, ColumnPerformanceIndex)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return &Mapper{index: index}, nil
}

// ToRecord validates one row. Feature columns go through the same rules as
// a prediction request; the performance index must lie in [0, 100].
func (m *Mapper) ToRecord(row []string) (models.StudentRecord, error) {
	payload := make(map[string]interface{}, len(columnFields))
	for _, cf := range columnFields {
		idx := m.index[cf.column]
		if idx >= len(row) {
			continue
		}
		payload[cf.field] = strings.TrimSpace(row[idx])
	}

	input, err := validation.ValidatePrediction(payload)
	if err != nil {
		return models.StudentRecord{}, err
	}

	perf, err := m.performanceIndex(row)
	if err != nil {
		return models.StudentRecord{}, err
	}

	return models.StudentRecord{
		HoursStudied:     input.HoursStudied,
		PreviousScores:   input.PreviousScores,
		Extracurricular:  input.Extracurricular,
		SleepHours:       input.SleepHours,
		SamplePapers:     input.SamplePapers,
		PerformanceIndex: perf,
	}, nil
}

func (m *Mapper) performanceIndex(row []string) (float64, error) {
	idx := m.index[ColumnPerformanceIndex]
	if idx >= len(row) {
		return 0, fmt.Errorf("%s: value is missing", ColumnPerformanceIndex)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", ColumnPerformanceIndex, row[idx])
	}
	if math.IsNaN(v) || v < 0 || v > 100 {
		return 0, fmt.Errorf("%s: %s is outside [0, 100]", ColumnPerformanceIndex, row[idx])
	}
	return v, nil
}

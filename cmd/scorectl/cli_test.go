// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/scorecast/internal/models"
	"github.com/tomtom215/scorecast/internal/validation"
)

const (
	linearModel = "../../internal/inference/testdata/linear.json"
	forestModel = "../../internal/inference/testdata/forest.json"
	studentsCSV = "../../internal/dataset/testdata/students.csv"
	mixedCSV    = "../../internal/dataset/testdata/mixed.csv"
)

// run executes scorectl with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LOG_LEVEL", "warn")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "scorectl (devel)\n", out)
}

func TestPredictText(t *testing.T) {
	out, _, err := run(t, "predict", "--model", linearModel,
		"--hours", "4", "--previous", "85", "--extracurricular", "no", "--sleep", "7", "--papers", "6")
	require.NoError(t, err)

	assert.Contains(t, out, "Predicted performance index: 68.66")
	assert.Contains(t, out, "Recommendations:")
}

func TestPredictJSON(t *testing.T) {
	out, _, err := run(t, "predict", "--model", linearModel, "--json",
		"--hours", "4", "--previous", "85", "--extracurricular", "no", "--sleep", "7", "--papers", "6")
	require.NoError(t, err)

	var res struct {
		Score           float64  `json:"predicted_performance_index"`
		Recommendations []string `json:"recommendations"`
		Tips            []string `json:"tips"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 68.66, res.Score, 1e-9)
	assert.NotEmpty(t, res.Recommendations)
}

func TestPredictRejectsInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "zero effort",
			args:    []string{"--hours", "0", "--previous", "85", "--extracurricular", "no", "--sleep", "7", "--papers", "0"},
			wantErr: validation.MsgZeroEffort,
		},
		{
			name:    "missing flag",
			args:    []string{"--hours", "4", "--previous", "85", "--extracurricular", "no", "--sleep", "7"},
			wantErr: models.FieldSamplePapers,
		},
		{
			name:    "bad boolean",
			args:    []string{"--hours", "4", "--previous", "85", "--extracurricular", "sometimes", "--sleep", "7", "--papers", "1"},
			wantErr: validation.MsgInvalidBoolean,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"predict", "--model", linearModel}, tt.args...)
			out, stderr, err := run(t, args...)
			require.Error(t, err)

			var fe *validation.FieldErrors
			require.ErrorAs(t, err, &fe)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, stderr, "Input rejected:")
			assert.Empty(t, out)
		})
	}
}

func TestPredictMissingModel(t *testing.T) {
	_, _, err := run(t, "predict", "--model", filepath.Join(t.TempDir(), "missing.json"),
		"--hours", "4", "--previous", "85", "--extracurricular", "no", "--sleep", "7", "--papers", "6")
	require.Error(t, err)
}

func TestModelInspect(t *testing.T) {
	out, _, err := run(t, "model", "inspect", "--model", forestModel)
	require.NoError(t, err)

	assert.Contains(t, out, "test-forest")
	assert.Contains(t, out, "random_forest")
	assert.Contains(t, out, "Trees")
	assert.Contains(t, out, "hours_studied, previous_scores, extracurricular, sleep_hours, sample_papers")
}

func TestModelInspectJSON(t *testing.T) {
	out, _, err := run(t, "model", "inspect", "--json", "--model", linearModel)
	require.NoError(t, err)

	var info models.ModelInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "test-linear", info.Version)
	assert.Len(t, info.SHA256, 64)
	assert.Equal(t, models.FeatureNames, info.Features)
}

func TestImportAndBrowse(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scorecast.duckdb")

	out, _, err := run(t, "import", "--db", dbPath, studentsCSV)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 5 of 5 rows")

	out, _, err = run(t, "records", "list", "--db", dbPath, "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "PERFORMANCE")
	assert.Contains(t, out, "2 of 5 records")

	out, _, err = run(t, "records", "list", "--db", dbPath, "--json", "--extracurricular", "true")
	require.NoError(t, err)
	var page struct {
		Records    []models.StudentRecord `json:"records"`
		Pagination models.PaginationInfo  `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Len(t, page.Records, 3)
	assert.EqualValues(t, 3, page.Pagination.TotalCount)
	for _, r := range page.Records {
		assert.True(t, r.Extracurricular)
	}

	out, _, err = run(t, "records", "list", "--db", dbPath, "--sample-papers", "2,5")
	require.NoError(t, err)
	assert.Contains(t, out, "4 of 4 records")

	out, _, err = run(t, "records", "summary", "--db", dbPath, "--json")
	require.NoError(t, err)
	var summary models.DatasetSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.EqualValues(t, 5, summary.Count)
	assert.InDelta(t, 36, summary.MinPerformanceIndex, 1e-9)
	assert.InDelta(t, 91, summary.MaxPerformanceIndex, 1e-9)

	// Importing again appends unless --replace is given.
	_, _, err = run(t, "import", "--db", dbPath, studentsCSV)
	require.NoError(t, err)
	out, _, err = run(t, "records", "list", "--db", dbPath, "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 of 10 records")

	_, _, err = run(t, "import", "--db", dbPath, "--replace", studentsCSV)
	require.NoError(t, err)
	out, _, err = run(t, "records", "list", "--db", dbPath, "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 of 5 records")
}

func TestImportReportsSkippedRows(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scorecast.duckdb")

	out, _, err := run(t, "import", "--db", dbPath, "--json", mixedCSV)
	require.NoError(t, err)

	var stats models.ImportStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 2, stats.RowsImported)
	assert.Equal(t, 4, stats.RowsSkipped)
	require.Len(t, stats.Errors, 4)
	assert.Equal(t, 3, stats.Errors[0].Line)
}

func TestImportDryRunDoesNotCreateStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scorecast.duckdb")

	out, _, err := run(t, "import", "--db", dbPath, "--dry-run", studentsCSV)
	require.NoError(t, err)
	assert.Contains(t, out, "Validated 5 of 5 rows")

	_, statErr := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(statErr), "dry run must not create the database file")
}

func TestImportRequiresFile(t *testing.T) {
	_, _, err := run(t, "import")
	require.Error(t, err)

	_, _, err = run(t, "import", "--dry-run", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestRecordsListRejectsBadFlags(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scorecast.duckdb")

	tests := [][]string{
		{"records", "list", "--db", dbPath, "--limit", "0"},
		{"records", "list", "--db", dbPath, "--offset", "-1"},
		{"records", "list", "--db", dbPath, "--extracurricular", "maybe"},
		{"records", "list", "--db", dbPath, "--sample-papers", "-2"},
		{"records", "list", "--db", dbPath, "--sample-papers", "two"},
	}
	for _, args := range tests {
		_, _, err := run(t, args...)
		assert.Error(t, err, "args %v", args)
	}
}

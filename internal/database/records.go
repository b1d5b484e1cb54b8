// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/scorecast/internal/database/query"
	"github.com/tomtom215/scorecast/internal/metrics"
	"github.com/tomtom215/scorecast/internal/models"
)

// RecordFilter narrows ListRecords and CountRecords. Nil fields match all rows.
type RecordFilter struct {
	Extracurricular *bool
	MinPerformance  *float64
	MaxPerformance  *float64
	SamplePapers    []int
}

func (f RecordFilter) where() (string, []interface{}) {
	return query.NewWhereBuilder().
		AddBool("extracurricular", f.Extracurricular).
		AddRange("performance_index", f.MinPerformance, f.MaxPerformance).
		AddIn("sample_papers", f.SamplePapers).
		BuildWithPrefix()
}

const recordColumns = `id, hours_studied, previous_scores, extracurricular,
	sleep_hours, sample_papers, performance_index, imported_at`

// InsertRecords writes records in a single transaction and returns the number
// of rows inserted. Either all rows are written or none are.
func (db *DB) InsertRecords(ctx context.Context, records []models.StudentRecord) (n int, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("insert", tableStudentPerformance, time.Since(start), err)
	}()

	if len(records) == 0 {
		return 0, nil
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = insertTx(ctx, tx, records); err != nil {
		return 0, err
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit records: %w", err)
	}
	return len(records), nil
}

// ReplaceRecords deletes every stored record and writes records in the same
// transaction. On error the previous contents are left untouched.
func (db *DB) ReplaceRecords(ctx context.Context, records []models.StudentRecord) (deleted int64, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("replace", tableStudentPerformance, time.Since(start), err)
	}()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, "DELETE FROM student_performance")
	if err != nil {
		return 0, fmt.Errorf("failed to delete records: %w", err)
	}
	if deleted, err = res.RowsAffected(); err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if err = insertTx(ctx, tx, records); err != nil {
		return 0, err
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit replacement: %w", err)
	}
	return deleted, nil
}

func insertTx(ctx context.Context, tx *sql.Tx, records []models.StudentRecord) error {
	if len(records) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO student_performance (
		hours_studied, previous_scores, extracurricular,
		sleep_hours, sample_papers, performance_index, imported_at
	) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer closeWithLog(stmt, "statement")

	now := time.Now().UTC()
	for i := range records {
		r := &records[i]
		importedAt := r.ImportedAt
		if importedAt.IsZero() {
			importedAt = now
		}
		if _, err := stmt.ExecContext(ctx,
			r.HoursStudied, r.PreviousScores, r.Extracurricular,
			r.SleepHours, r.SamplePapers, r.PerformanceIndex, importedAt,
		); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}
	return nil
}

// ListRecords returns a page of records ordered by id.
func (db *DB) ListRecords(ctx context.Context, filter RecordFilter, limit, offset int) (records []models.StudentRecord, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("select", tableStudentPerformance, time.Since(start), err)
	}()

	where, args := filter.where()
	q := fmt.Sprintf(`SELECT %s FROM student_performance %s ORDER BY id LIMIT ? OFFSET ?`, recordColumns, where)
	args = append(args, limit, offset)

	rows, err := db.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer closeWithLog(rows, "rows")

	records = make([]models.StudentRecord, 0, limit)
	for rows.Next() {
		var r models.StudentRecord
		if err = rows.Scan(
			&r.ID, &r.HoursStudied, &r.PreviousScores, &r.Extracurricular,
			&r.SleepHours, &r.SamplePapers, &r.PerformanceIndex, &r.ImportedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}
	return records, nil
}

// CountRecords returns the number of records matching filter.
func (db *DB) CountRecords(ctx context.Context, filter RecordFilter) (count int64, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("count", tableStudentPerformance, time.Since(start), err)
	}()

	where, args := filter.where()
	q := "SELECT COUNT(*) FROM student_performance " + where
	if err = db.conn.QueryRowContext(ctx, q, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// Summary aggregates the whole dataset. An empty table yields zero values.
func (db *DB) Summary(ctx context.Context) (summary *models.DatasetSummary, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("summary", tableStudentPerformance, time.Since(start), err)
	}()

	s := &models.DatasetSummary{}
	err = db.conn.QueryRowContext(ctx, `SELECT
		COUNT(*),
		COALESCE(AVG(hours_studied), 0),
		COALESCE(AVG(previous_scores), 0),
		COALESCE(AVG(sleep_hours), 0),
		COALESCE(AVG(sample_papers), 0),
		COALESCE(AVG(CASE WHEN extracurricular THEN 1.0 ELSE 0.0 END), 0),
		COALESCE(AVG(performance_index), 0),
		COALESCE(MIN(performance_index), 0),
		COALESCE(MAX(performance_index), 0)
	FROM student_performance`).Scan(
		&s.Count, &s.AvgHoursStudied, &s.AvgPreviousScores, &s.AvgSleepHours,
		&s.AvgSamplePapers, &s.ExtracurricularShare, &s.AvgPerformanceIndex,
		&s.MinPerformanceIndex, &s.MaxPerformanceIndex,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize records: %w", err)
	}
	return s, nil
}

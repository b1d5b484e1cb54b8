// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package database

import (
	"context"
	"fmt"
)

const tableStudentPerformance = "student_performance"

var schemaStatements = []string{
	`CREATE SEQUENCE IF NOT EXISTS student_performance_id_seq START 1`,
	`CREATE TABLE IF NOT EXISTS student_performance (
		id BIGINT PRIMARY KEY DEFAULT nextval('student_performance_id_seq'),
		hours_studied DOUBLE NOT NULL,
		previous_scores DOUBLE NOT NULL,
		extracurricular BOOLEAN NOT NULL,
		sleep_hours DOUBLE NOT NULL,
		sample_papers BIGINT NOT NULL,
		performance_index DOUBLE NOT NULL,
		imported_at TIMESTAMP NOT NULL DEFAULT current_timestamp
	)`,
}

func (db *DB) createTables(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

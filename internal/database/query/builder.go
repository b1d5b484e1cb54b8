// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

// Package query builds parameterized WHERE clauses for dataset queries.
package query

import (
	"fmt"
	"strings"
)

// WhereBuilder collects AND-joined conditions and their bound arguments.
//
//	wb := query.NewWhereBuilder()
//	wb.AddBool("extracurricular", &yes)
//	wb.AddRange("performance_index", &lo, nil)
//	wb.AddIn("sample_papers", []int{2, 3})
//	where, args := wb.BuildWithPrefix()
//	// WHERE extracurricular = ? AND performance_index >= ? AND sample_papers IN (?, ?)
//
// Column names are interpolated and must never come from user input.
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates an empty builder.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

func (wb *WhereBuilder) addClause(clause string, args ...interface{}) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddBool adds "column = ?" when value is non-nil.
func (wb *WhereBuilder) AddBool(column string, value *bool) *WhereBuilder {
	if value != nil {
		wb.addClause(column+" = ?", *value)
	}
	return wb
}

// AddRange adds inclusive bounds on column. Nil bounds are skipped.
func (wb *WhereBuilder) AddRange(column string, minValue, maxValue *float64) *WhereBuilder {
	if minValue != nil {
		wb.addClause(column+" >= ?", *minValue)
	}
	if maxValue != nil {
		wb.addClause(column+" <= ?", *maxValue)
	}
	return wb
}

// AddIn adds "column IN (?, ...)" for a non-empty set of integers.
func (wb *WhereBuilder) AddIn(column string, values []int) *WhereBuilder {
	if len(values) == 0 {
		return wb
	}
	placeholders := make([]string, len(values))
	for i, v := range values {
		placeholders[i] = "?"
		wb.args = append(wb.args, v)
	}
	wb.clauses = append(wb.clauses, fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ", ")))
	return wb
}

// Build joins the clauses with AND. With no clauses it returns "1=1".
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}

// BuildWithPrefix is Build with a leading "WHERE ".
func (wb *WhereBuilder) BuildWithPrefix() (string, []interface{}) {
	whereClause, args := wb.Build()
	return "WHERE " + whereClause, args
}

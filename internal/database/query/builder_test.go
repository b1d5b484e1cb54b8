// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package query

import (
	"reflect"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func TestWhereBuilder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		build     func(*WhereBuilder)
		wantWhere string
		wantArgs  []interface{}
	}{
		{
			name:      "empty",
			build:     func(*WhereBuilder) {},
			wantWhere: "1=1",
			wantArgs:  []interface{}{},
		},
		{
			name: "bool filter",
			build: func(wb *WhereBuilder) {
				wb.AddBool("extracurricular", ptr(true))
			},
			wantWhere: "extracurricular = ?",
			wantArgs:  []interface{}{true},
		},
		{
			name: "nil bool skipped",
			build: func(wb *WhereBuilder) {
				wb.AddBool("extracurricular", nil)
			},
			wantWhere: "1=1",
			wantArgs:  []interface{}{},
		},
		{
			name: "full range",
			build: func(wb *WhereBuilder) {
				wb.AddRange("performance_index", ptr(40.0), ptr(90.0))
			},
			wantWhere: "performance_index >= ? AND performance_index <= ?",
			wantArgs:  []interface{}{40.0, 90.0},
		},
		{
			name: "upper bound only",
			build: func(wb *WhereBuilder) {
				wb.AddRange("hours_studied", nil, ptr(5.0))
			},
			wantWhere: "hours_studied <= ?",
			wantArgs:  []interface{}{5.0},
		},
		{
			name: "in list with bool",
			build: func(wb *WhereBuilder) {
				wb.AddIn("sample_papers", []int{0, 1})
				wb.AddBool("extracurricular", ptr(true))
			},
			wantWhere: "sample_papers IN (?, ?) AND extracurricular = ?",
			wantArgs:  []interface{}{0, 1, true},
		},
		{
			name: "empty in list skipped",
			build: func(wb *WhereBuilder) {
				wb.AddIn("sample_papers", nil)
			},
			wantWhere: "1=1",
			wantArgs:  []interface{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wb := NewWhereBuilder()
			tt.build(wb)
			where, args := wb.Build()
			if where != tt.wantWhere {
				t.Errorf("Build() where = %q, want %q", where, tt.wantWhere)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("Build() args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestBuildWithPrefix(t *testing.T) {
	t.Parallel()

	wb := NewWhereBuilder().AddBool("extracurricular", ptr(false))
	where, _ := wb.BuildWithPrefix()
	if where != "WHERE extracurricular = ?" {
		t.Errorf("BuildWithPrefix() = %q", where)
	}

	empty, args := NewWhereBuilder().BuildWithPrefix()
	if empty != "WHERE 1=1" || len(args) != 0 {
		t.Errorf("empty BuildWithPrefix() = %q, %v", empty, args)
	}
}

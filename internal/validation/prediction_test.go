// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/scorecast/internal/models"
)

func payload(hours, prev interface{}, ext interface{}, sleep, papers interface{}) map[string]interface{} {
	return map[string]interface{}{
		models.FieldHoursStudied:    hours,
		models.FieldPreviousScores:  prev,
		models.FieldExtracurricular: ext,
		models.FieldSleepHours:      sleep,
		models.FieldSamplePapers:    papers,
	}
}

func mustFieldErrors(t *testing.T, err error) *FieldErrors {
	t.Helper()
	var fe *FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FieldErrors, got %T (%v)", err, err)
	}
	return fe
}

func TestValidatePrediction_Accepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  map[string]interface{}
		want models.PredictionInput
	}{
		{
			name: "strong student",
			raw:  payload(4.0, 85.0, false, 7.0, 6.0),
			want: models.PredictionInput{HoursStudied: 4, PreviousScores: 85, SleepHours: 7, SamplePapers: 6},
		},
		{
			name: "weak student with extracurricular",
			raw:  payload(0.5, 40.0, true, 5.0, 0.0),
			want: models.PredictionInput{HoursStudied: 0.5, PreviousScores: 40, Extracurricular: true, SleepHours: 5},
		},
		{
			name: "daily allocation exactly at limit",
			raw:  payload(10.0, 70.0, true, 8.0, 1.0),
			want: models.PredictionInput{HoursStudied: 10, PreviousScores: 70, Extracurricular: true, SleepHours: 8, SamplePapers: 1},
		},
		{
			name: "zero hours but papers practiced",
			raw:  payload(0.0, 60.0, false, 8.0, 3.0),
			want: models.PredictionInput{PreviousScores: 60, SleepHours: 8, SamplePapers: 3},
		},
		{
			name: "numeric strings and loose booleans",
			raw:  payload("2.5", "70", "yes", " 8 ", "4.0"),
			want: models.PredictionInput{HoursStudied: 2.5, PreviousScores: 70, Extracurricular: true, SleepHours: 8, SamplePapers: 4},
		},
		{
			name: "json numbers and integer boolean",
			raw:  payload(json.Number("3"), json.Number("55.5"), 0.0, json.Number("6"), json.Number("2")),
			want: models.PredictionInput{HoursStudied: 3, PreviousScores: 55.5, SleepHours: 6, SamplePapers: 2},
		},
		{
			name: "upper bounds inclusive",
			raw:  payload(12.0, 100.0, false, 8.0, 1000.0),
			want: models.PredictionInput{HoursStudied: 12, PreviousScores: 100, SleepHours: 8, SamplePapers: 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidatePrediction(tt.raw)
			if err != nil {
				t.Fatalf("ValidatePrediction() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ValidatePrediction() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestValidatePrediction_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		raw   interface{}
		field string
		want  string
	}{
		{"hours above range", payload(25.0, 50.0, false, 0.0, 1.0), models.FieldHoursStudied,
			"Ensure this value is less than or equal to 24.0."},
		{"negative scores", payload(2.0, -1.0, false, 7.0, 1.0), models.FieldPreviousScores,
			"Ensure this value is greater than or equal to 0.0."},
		{"scores above 100", payload(2.0, 100.5, false, 7.0, 1.0), models.FieldPreviousScores,
			"Ensure this value is less than or equal to 100.0."},
		{"negative papers", payload(2.0, 60.0, false, 7.0, -3.0), models.FieldSamplePapers,
			"Ensure this value is greater than or equal to 0."},
		{"fractional papers", payload(2.0, 60.0, false, 7.0, 2.5), models.FieldSamplePapers, MsgInvalidInteger},
		{"sleep not a number", payload(2.0, 60.0, false, "lots", 1.0), models.FieldSleepHours, MsgInvalidNumber},
		{"nan string", payload("NaN", 60.0, false, 7.0, 1.0), models.FieldHoursStudied, MsgInvalidNumber},
		{"bool as number", payload(true, 60.0, false, 7.0, 1.0), models.FieldHoursStudied, MsgInvalidNumber},
		{"bad boolean", payload(2.0, 60.0, "sometimes", 7.0, 1.0), models.FieldExtracurricular, MsgInvalidBoolean},
		{"null field", payload(2.0, nil, false, 7.0, 1.0), models.FieldPreviousScores, MsgNull},
		{"missing field", map[string]interface{}{
			models.FieldHoursStudied:    2.0,
			models.FieldPreviousScores:  60.0,
			models.FieldExtracurricular: false,
			models.FieldSamplePapers:    1.0,
		}, models.FieldSleepHours, MsgRequired},
		{"zero effort", payload(0.0, 60.0, false, 8.0, 0.0), NonFieldErrors, MsgZeroEffort},
		{"not an object", []interface{}{1.0, 2.0}, NonFieldErrors,
			"Invalid data. Expected a JSON object, but got array."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ValidatePrediction(tt.raw)
			fe := mustFieldErrors(t, err)

			msgs := fe.Get(tt.field)
			if len(msgs) == 0 {
				t.Fatalf("expected error for %s, got %v", tt.field, fe.Map())
			}
			if msgs[0] != tt.want {
				t.Errorf("message = %q, want %q", msgs[0], tt.want)
			}
		})
	}
}

func TestValidatePrediction_RejectsOversizedPapers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		papers interface{}
	}{
		{"max int64 json number", json.Number("9223372036854775807")},
		{"max int64 string", "9223372036854775807"},
		{"just past exact float range", json.Number("9007199254740993")},
		{"int64 value", int64(1) << 60},
		{"huge float", 1e19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidatePrediction(payload(2.0, 60.0, false, 7.0, tt.papers))
			if err == nil {
				t.Fatalf("ValidatePrediction() accepted sample_papers %v as %d", tt.papers, got.SamplePapers)
			}
			fe := mustFieldErrors(t, err)
			if msgs := fe.Get(models.FieldSamplePapers); len(msgs) == 0 || msgs[0] != MsgInvalidInteger {
				t.Errorf("sample_papers errors = %v, want [%q]", msgs, MsgInvalidInteger)
			}
		})
	}
}

func TestValidatePrediction_LargestExactPapers(t *testing.T) {
	t.Parallel()

	got, err := ValidatePrediction(payload(2.0, 60.0, false, 7.0, json.Number("9007199254740992")))
	if err != nil {
		t.Fatalf("ValidatePrediction() unexpected error: %v", err)
	}
	if got.SamplePapers != 1<<53 {
		t.Errorf("SamplePapers = %d, want %d", got.SamplePapers, 1<<53)
	}
}

func TestValidatePrediction_DailyAllocation(t *testing.T) {
	t.Parallel()

	_, err := ValidatePrediction(payload(10.0, 70.0, true, 10.0, 2.0))
	fe := mustFieldErrors(t, err)

	msgs := fe.Get(NonFieldErrors)
	if len(msgs) != 1 {
		t.Fatalf("expected one non-field error, got %v", fe.Map())
	}
	want := "The sum of hours_studied (10.0), sleep_hours (10.0) and extracurricular (~2.0) is 22.0 " +
		"which exceeds a recommended daily allocation of 20 hours. " +
		"Please adjust values so they add up to 20 hours or less."
	if msgs[0] != want {
		t.Errorf("message =\n%q\nwant\n%q", msgs[0], want)
	}
}

func TestValidatePrediction_DailyAllocationBoundary(t *testing.T) {
	t.Parallel()

	if _, err := ValidatePrediction(payload(12.0, 70.0, false, 8.0, 0.0)); err != nil {
		t.Errorf("total of exactly 20.0 must be accepted, got %v", err)
	}

	_, err := ValidatePrediction(payload(12.01, 70.0, false, 8.0, 0.0))
	fe := mustFieldErrors(t, err)
	msgs := fe.Get(NonFieldErrors)
	if len(msgs) != 1 || !strings.Contains(msgs[0], "is 20.0 which exceeds") {
		t.Errorf("expected 20.01 total to be rejected, got %v", fe.Map())
	}
}

func TestValidatePrediction_ReportsAllViolations(t *testing.T) {
	t.Parallel()

	// Invalid score plus both cross-field rules violated at once is impossible
	// (zero hours cannot exceed the allocation), so combine a field error with
	// zero effort.
	_, err := ValidatePrediction(payload(0.0, 150.0, "maybe", 8.0, 0.0))
	fe := mustFieldErrors(t, err)

	for _, field := range []string{models.FieldPreviousScores, models.FieldExtracurricular, NonFieldErrors} {
		if len(fe.Get(field)) == 0 {
			t.Errorf("expected an error for %s, got %v", field, fe.Map())
		}
	}
	if fe.Len() != 3 {
		t.Errorf("expected 3 messages, got %d: %v", fe.Len(), fe.Map())
	}
	if !strings.HasPrefix(fe.Error(), "invalid prediction input: extracurricular:") {
		t.Errorf("unexpected Error() = %q", fe.Error())
	}
}

func TestValidatePrediction_SkipsCrossFieldOnInvalidOperands(t *testing.T) {
	t.Parallel()

	_, err := ValidatePrediction(payload(30.0, 70.0, true, 10.0, 2.0))
	fe := mustFieldErrors(t, err)

	if len(fe.Get(NonFieldErrors)) != 0 {
		t.Errorf("cross-field rules need valid operands, got %v", fe.Get(NonFieldErrors))
	}
	if len(fe.Get(models.FieldHoursStudied)) != 1 {
		t.Errorf("expected hours_studied range error, got %v", fe.Map())
	}
}

func TestToBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     interface{}
		want   bool
		wantOK bool
	}{
		{true, true, true},
		{false, false, true},
		{"True", true, true},
		{"off", false, true},
		{"Y", true, true},
		{"n", false, true},
		{1.0, true, true},
		{0.0, false, true},
		{2.0, false, false},
		{"", false, false},
		{[]interface{}{}, false, false},
	}

	for _, tt := range tests {
		got, ok := toBool(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("toBool(%v) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFormatDecimal(t *testing.T) {
	t.Parallel()

	for in, want := range map[float64]string{5: "5.0", 0.5: "0.5", 12.25: "12.25", 0: "0.0"} {
		if got := formatDecimal(in); got != want {
			t.Errorf("formatDecimal(%v) = %q, want %q", in, got, want)
		}
	}
}

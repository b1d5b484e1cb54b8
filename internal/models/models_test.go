// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package models

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
)

func TestNewScoreRounding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{77.666, 77.67},
		{82.3, 82.3},
		{49.994, 49.99},
		{0, 0},
		{100.0049, 100},
	}

	for _, tt := range tests {
		if got := float64(NewScore(tt.in)); got != tt.want {
			t.Errorf("NewScore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScoreMarshalJSON(t *testing.T) {
	t.Parallel()

	res := PredictionResult{
		PredictedPerformanceIndex: NewScore(82.3),
		Recommendations:           []string{"a"},
		Tips:                      []string{"b"},
	}
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"predicted_performance_index":82.30,"recommendations":["a"],"tips":["b"]}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	if _, err := json.Marshal(Score(math.NaN())); err == nil {
		t.Error("expected error marshaling NaN score")
	}
}

func TestFeatures(t *testing.T) {
	t.Parallel()

	in := PredictionInput{HoursStudied: 4, PreviousScores: 85, Extracurricular: true, SleepHours: 7, SamplePapers: 6}
	got := in.Features()
	want := []float64{4, 85, 1, 7, 6}

	if len(got) != len(FeatureNames) {
		t.Fatalf("expected %d features, got %d", len(FeatureNames), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("feature %s = %v, want %v", FeatureNames[i], got[i], want[i])
		}
	}

	in.Extracurricular = false
	if in.Features()[2] != 0 {
		t.Error("extracurricular=false should encode as 0")
	}
}

// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

// Package models holds the data types shared by the HTTP API, the CLI and
// the internal services.
package models

import (
	"fmt"
	"math"
	"strconv"
)

// Field names of the prediction request, in feature order.
const (
	FieldHoursStudied    = "hours_studied"
	FieldPreviousScores  = "previous_scores"
	FieldExtracurricular = "extracurricular"
	FieldSleepHours      = "sleep_hours"
	FieldSamplePapers    = "sample_papers"
)

// FeatureNames is the fixed feature order the regression artifact was trained on.
var FeatureNames = []string{
	FieldHoursStudied,
	FieldPreviousScores,
	FieldExtracurricular,
	FieldSleepHours,
	FieldSamplePapers,
}

// PredictionInput is a validated prediction request. Values of this type are
// only produced by the validation package, so the range and cross-field
// invariants always hold.
type PredictionInput struct {
	HoursStudied    float64 `json:"hours_studied"`
	PreviousScores  float64 `json:"previous_scores"`
	Extracurricular bool    `json:"extracurricular"`
	SleepHours      float64 `json:"sleep_hours"`
	SamplePapers    int     `json:"sample_papers"`
}

// Features returns the model feature vector
// [hours_studied, previous_scores, extracurricular(1/0), sleep_hours, sample_papers].
func (in PredictionInput) Features() []float64 {
	ext := 0.0
	if in.Extracurricular {
		ext = 1.0
	}
	return []float64{in.HoursStudied, in.PreviousScores, ext, in.SleepHours, float64(in.SamplePapers)}
}

// PredictionResult is the successful response body of a prediction.
type PredictionResult struct {
	PredictedPerformanceIndex Score    `json:"predicted_performance_index"`
	Recommendations           []string `json:"recommendations"`
	Tips                      []string `json:"tips"`
}

// Score is a predicted performance index. It is rounded to two decimals and
// always serialized with exactly two decimals (82.3 -> 82.30).
type Score float64

// NewScore rounds v half away from zero to two decimals.
func NewScore(v float64) Score {
	return Score(math.Round(v*100) / 100)
}

// MarshalJSON implements json.Marshaler.
func (s Score) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("score %v is not a finite number", f)
	}
	return strconv.AppendFloat(nil, f, 'f', 2, 64), nil
}

func (s Score) String() string {
	return strconv.FormatFloat(float64(s), 'f', 2, 64)
}

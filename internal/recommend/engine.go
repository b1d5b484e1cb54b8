// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

// Package recommend turns a validated prediction input and its predicted
// score into study advice.
//
// Generate is a pure function: the same input and score always yield the same
// Advice, in the same order. Rules are evaluated in a fixed sequence:
//
//  1. hours studied
//  2. previous scores
//  3. extracurricular participation
//  4. sleep
//  5. sample papers practiced
//  6. predicted score band (skipped when the score is NaN or infinite)
//
// followed by two tips that are always included.
package recommend

import (
	"math"

	"github.com/tomtom215/scorecast/internal/models"
)

// Advice is the output of Generate.
type Advice struct {
	Recommendations []string `json:"recommendations"`
	Tips            []string `json:"tips"`

	// Rules names every rule outcome that fired, in order ("hours.low",
	// "score.strong", ...).
	Rules []string `json:"-"`
}

// Score band thresholds shared by previous scores and the predicted score.
const (
	lowScoreBelow      = 50.0
	moderateScoreBelow = 75.0
)

type rule func(in models.PredictionInput, score float64, a *Advice)

// rules fire in this order; changing it changes the response.
var rules = []rule{
	hoursRule,
	previousScoresRule,
	extracurricularRule,
	sleepRule,
	samplePapersRule,
	predictedScoreRule,
}

// Generate returns advice for the given input and predicted score.
func Generate(in models.PredictionInput, score float64) Advice {
	a := Advice{
		Recommendations: make([]string, 0, len(rules)+1),
		Tips:            make([]string, 0, 3),
	}
	for _, r := range rules {
		r(in, score, &a)
	}
	a.Tips = append(a.Tips, TipSpacedIntervals, TipSelfTesting)
	return a
}

func (a *Advice) recommend(ruleName, text string) {
	a.Recommendations = append(a.Recommendations, text)
	a.Rules = append(a.Rules, ruleName)
}

func hoursRule(in models.PredictionInput, _ float64, a *Advice) {
	switch {
	case in.HoursStudied < 1:
		a.recommend("hours.low", RecStudyTimeLow)
	case in.HoursStudied < 3:
		a.recommend("hours.moderate", RecStudyTimeModerate)
	default:
		a.recommend("hours.strong", RecStudyTimeStrong)
	}
}

func previousScoresRule(in models.PredictionInput, _ float64, a *Advice) {
	switch {
	case in.PreviousScores < lowScoreBelow:
		a.recommend("previous.low", RecScoresLow)
		a.Tips = append(a.Tips, TipSpacedRepetition)
	case in.PreviousScores < moderateScoreBelow:
		a.recommend("previous.moderate", RecScoresModerate)
	}
}

func extracurricularRule(in models.PredictionInput, _ float64, a *Advice) {
	if in.Extracurricular {
		a.recommend("extracurricular.balance", RecExtracurricularBalance)
		return
	}
	a.recommend("extracurricular.suggest", RecExtracurricularSuggest)
}

func sleepRule(in models.PredictionInput, _ float64, a *Advice) {
	switch {
	case in.SleepHours < 6:
		a.recommend("sleep.low", RecSleepLow)
	case in.SleepHours > 10:
		a.recommend("sleep.high", RecSleepHigh)
	}
}

func samplePapersRule(in models.PredictionInput, _ float64, a *Advice) {
	switch {
	case in.SamplePapers == 0:
		a.recommend("papers.none", RecPapersNone)
	case in.SamplePapers < 5:
		a.recommend("papers.few", RecPapersFew)
	}
}

func predictedScoreRule(_ models.PredictionInput, score float64, a *Advice) {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return
	}
	switch {
	case score < lowScoreBelow:
		a.recommend("score.low", RecOutlookLow)
	case score < moderateScoreBelow:
		a.recommend("score.moderate", RecOutlookModerate)
	default:
		a.recommend("score.strong", RecOutlookStrong)
	}
}

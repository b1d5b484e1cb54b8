// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package recommend

// Recommendation texts.
const (
	RecStudyTimeLow      = "Increase daily study time. Start with at least 1-2 hours of focused study and build up."
	RecStudyTimeModerate = "Good start: try focused study sessions of 25-50 minutes with short breaks (Pomodoro)."
	RecStudyTimeStrong   = "Strong study habit. Keep it consistent and add targeted practice on weak areas."

	RecScoresLow      = "Previous scores are low: consider guided tutoring and topic-wise revision."
	RecScoresModerate = "Moderate previous scores: prioritise past-paper practice and error analysis."

	RecExtracurricularBalance = "Extracurricular activities can boost skills. Balance your time and avoid last-minute cramming."
	RecExtracurricularSuggest = "Consider light extracurricular activities to improve time management and reduce stress."

	RecSleepLow  = "Increase nightly sleep to 7-9 hours for better memory consolidation."
	RecSleepHigh = "Very long sleep can indicate an inconsistent schedule: aim for a consistent 7-9 hours."

	RecPapersNone = "Start practicing sample papers: begin with 2-3 timed papers per week to build exam stamina."
	RecPapersFew  = "Increase the frequency of timed sample papers and review mistakes in detail."

	RecOutlookLow      = "Predicted performance is low: make an action plan with tutoring, mock tests and focused revision."
	RecOutlookModerate = "Predicted performance is moderate: address weak topics and increase timed practice."
	RecOutlookStrong   = "Predicted performance looks strong: maintain the current routine and target advanced practice."
)

// Tip texts.
const (
	TipSpacedRepetition = "Focus on fundamentals first; use spaced repetition for difficult topics."
	TipSpacedIntervals  = "Instead of cramming, review material at increasing intervals over several days or weeks."
	TipSelfTesting      = "Test yourself frequently rather than just re-reading notes. Use flashcards or create your own practice quizzes."
)

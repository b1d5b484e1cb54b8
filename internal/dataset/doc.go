// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

// Package dataset imports the student performance training dataset from CSV.
//
// The expected header is the one published with the dataset:
//
//	Hours Studied,Previous Scores,Extracurricular Activities,Sleep Hours,
//	Sample Question Papers Practiced,Performance Index
//
// Feature columns are validated with the same rules as a prediction request,
// so a stored row is always a valid prediction input. Extracurricular
// Activities accepts Yes/No as well as the usual boolean spellings.
package dataset

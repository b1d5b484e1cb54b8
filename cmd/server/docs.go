// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

// Package main provides the Scorecast HTTP server
//
// @title Scorecast API
// @version 1.0
// @description Predicts a student's performance index from study habits and returns study recommendations
// @description
// @description ## Prediction
// @description
// @description `POST /predict` accepts `hours_studied`, `previous_scores`, `extracurricular`,
// @description `sleep_hours` and `sample_papers`. A rejected payload answers 400 with every
// @description violation listed per field:
// @description ```json
// @description {
// @description   "errors": {
// @description     "sample_papers": ["This field is required."],
// @description     "non_field_errors": ["At least one of 'hours_studied' or 'sample_papers' should be greater than 0."]
// @description   }
// @description }
// @description ```
// @description
// @description ## Error Responses
// @description
// @description All other endpoints return errors in this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message"
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-01-18T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/scorecast/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Prediction
// @tag.description Performance index prediction and model metadata
//
// @tag.name Dataset
// @tag.description Read-only views of the imported training dataset
//
// @tag.name Health
// @tag.description Liveness, readiness and service status
package main

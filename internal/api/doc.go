// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

/*
Package api provides the HTTP surface of the prediction service.

Routes (all under /api/v1 unless noted):

	POST /predict           score one student, returns the raw PredictionResult
	GET  /model             loaded artifact metadata
	GET  /health            version, uptime, model and dataset store state
	GET  /health/live       liveness probe
	GET  /health/ready      readiness probe (503 until the model is loaded)
	GET  /records           paged training rows (dataset store only)
	GET  /records/summary   dataset aggregates (dataset store only)
	GET  /metrics           Prometheus exposition (root)
	GET  /swagger/*         Swagger UI (root, when enabled)

Response formats:

/predict keeps the shape existing clients expect. Success is

	{"predicted_performance_index": 72.31, "recommendations": [...], "tips": [...]}

and any rejected payload answers 400 with

	{"errors": {"hours_studied": ["..."], "non_field_errors": ["..."]}}

Every other endpoint uses the models.APIResponse envelope:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "...", "request_id": "..."}}

Errors in the envelope carry a stable code (VALIDATION_ERROR, DATABASE_ERROR,
SERVICE_UNAVAILABLE, ...) and never include internal error text.

Middleware order: request ID, access log, real IP, panic recovery and CORS
run for every route; security headers and Prometheus metrics for /api/v1.
*/
package api

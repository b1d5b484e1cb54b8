// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

// Package metrics defines the Prometheus instrumentation exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prediction outcomes.
const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
	OutcomeInferenceError  = "inference_error"
)

var (
	// Prediction metrics
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scorecast_predictions_total",
			Help: "Prediction requests by outcome",
		},
		[]string{"outcome"},
	)

	PredictionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scorecast_prediction_duration_seconds",
			Help:    "Time spent validating, scoring and building advice",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		},
	)

	PredictedScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scorecast_predicted_score",
			Help:    "Distribution of predicted performance index values",
			Buckets: prometheus.LinearBuckets(10, 10, 9), // 10, 20, ... 90
		},
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scorecast_validation_failures_total",
			Help: "Rejected prediction fields (non_field_errors for cross-field rules)",
		},
		[]string{"field"},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scorecast_recommendations_total",
			Help: "Recommendation rule outcomes emitted",
		},
		[]string{"rule"},
	)

	ModelInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "scorecast_model_info",
			Help: "Loaded regression artifact (value is always 1)",
		},
		[]string{"name", "version", "type"},
	)

	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Dataset store metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	DatasetImportRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scorecast_dataset_import_rows_total",
			Help: "CSV rows processed by dataset imports",
		},
		[]string{"result"}, // imported, skipped
	)
)

// RecordPrediction records the outcome of one prediction.
func RecordPrediction(outcome string, duration time.Duration) {
	PredictionsTotal.WithLabelValues(outcome).Inc()
	PredictionDuration.Observe(duration.Seconds())
}

// RecordPredictedScore observes a successful prediction's score and the
// recommendation rules that fired for it.
func RecordPredictedScore(score float64, rules []string) {
	PredictedScore.Observe(score)
	for _, r := range rules {
		RecommendationsTotal.WithLabelValues(r).Inc()
	}
}

// RecordValidationFailure counts rejected fields.
func RecordValidationFailure(fields []string) {
	for _, f := range fields {
		ValidationFailures.WithLabelValues(f).Inc()
	}
}

// SetModelInfo publishes the loaded artifact identity.
func SetModelInfo(name, version, modelType string) {
	ModelInfo.Reset()
	ModelInfo.WithLabelValues(name, version, modelType).Set(1)
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordDBQuery records a dataset store query.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordDatasetImport records the row counts of one import.
func RecordDatasetImport(imported, skipped int) {
	DatasetImportRows.WithLabelValues("imported").Add(float64(imported))
	DatasetImportRows.WithLabelValues("skipped").Add(float64(skipped))
}

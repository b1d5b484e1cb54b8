// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package api

import (
	"context"
	"time"

	"github.com/tomtom215/scorecast/internal/config"
	"github.com/tomtom215/scorecast/internal/database"
	"github.com/tomtom215/scorecast/internal/models"
	"github.com/tomtom215/scorecast/internal/predict"
)

// RecordStore is the read side of the dataset store used by the records
// endpoints. *database.DB satisfies it.
type RecordStore interface {
	Ping(ctx context.Context) error
	ListRecords(ctx context.Context, filter database.RecordFilter, limit, offset int) ([]models.StudentRecord, error)
	CountRecords(ctx context.Context, filter database.RecordFilter) (int64, error)
	Summary(ctx context.Context) (*models.DatasetSummary, error)
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_predict.go: prediction endpoint
//   - handlers_health.go: health, liveness and readiness probes
//   - handlers_model.go: loaded model metadata
//   - handlers_records.go: read-only dataset views
type Handler struct {
	predictor *predict.Service
	store     RecordStore // nil when the dataset store is disabled
	config    *config.Config
	version   string
	startTime time.Time
}

// NewHandler creates the API handler. store may be nil; the records
// endpoints then answer 503.
func NewHandler(predictor *predict.Service, store RecordStore, cfg *config.Config, version string) *Handler {
	return &Handler{
		predictor: predictor,
		store:     store,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
}

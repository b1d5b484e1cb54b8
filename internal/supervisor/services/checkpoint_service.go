// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package services

import (
	"context"
	"time"

	"github.com/tomtom215/scorecast/internal/logging"
)

// Checkpointer is satisfied by *database.DB.
type Checkpointer interface {
	Checkpoint(ctx context.Context) error
}

// CheckpointService periodically flushes the dataset store's WAL so a crash
// loses at most one interval of imported rows. Failures are logged and
// retried on the next tick rather than restarting the service.
type CheckpointService struct {
	db       Checkpointer
	interval time.Duration
	timeout  time.Duration
	name     string
}

// NewCheckpointService creates the service. A non-positive interval means 5m.
func NewCheckpointService(db Checkpointer, interval time.Duration) *CheckpointService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &CheckpointService{
		db:       db,
		interval: interval,
		timeout:  30 * time.Second,
		name:     "duckdb-checkpoint",
	}
}

// Serve implements suture.Service.
func (s *CheckpointService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.checkpoint(ctx)
		}
	}
}

func (s *CheckpointService) checkpoint(ctx context.Context) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.db.Checkpoint(cctx); err != nil {
		logging.Warn().Err(err).Str("service", s.name).Msg("Periodic checkpoint failed")
		return
	}
	logging.Debug().Dur("duration", time.Since(start)).Msg("Dataset store checkpointed")
}

// String names the service in supervisor logs.
func (s *CheckpointService) String() string {
	return s.name
}

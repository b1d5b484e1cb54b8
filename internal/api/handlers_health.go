// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/scorecast/internal/models"
)

const healthPingTimeout = 2 * time.Second

// Health reports overall service state. It always answers 200; a failing
// dataset store only marks the service degraded.
//
// @Summary Service health
// @Description Returns version, uptime, loaded model metadata and dataset store connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	status := models.HealthStatus{
		Status:         "healthy",
		Version:        h.version,
		DatasetEnabled: h.store != nil,
		Uptime:         time.Since(h.startTime).Seconds(),
	}

	if m := h.predictor.Model(); m != nil {
		info := m.Info()
		status.Model = &info
	} else {
		status.Status = "degraded"
	}

	if h.store != nil {
		status.DatabaseConnected = h.pingStore(r.Context()) == nil
		if !status.DatabaseConnected {
			status.Status = "degraded"
		}
	}

	respondSuccess(w, r, start, status)
}

// HealthLive is the liveness probe. It only proves the process serves HTTP.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, time.Now(), map[string]string{"status": "alive"})
}

// HealthReady is the readiness probe: a model must be loaded and, when the
// dataset store is enabled, it must answer a ping.
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Ready"
// @Failure 503 {object} models.APIResponse "Not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.predictor.Model() == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Model not loaded", nil)
		return
	}
	if h.store != nil {
		if err := h.pingStore(r.Context()); err != nil {
			respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Dataset store unavailable", err)
			return
		}
	}

	respondSuccess(w, r, start, map[string]string{"status": "ready"})
}

func (h *Handler) pingStore(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return h.store.Ping(ctx)
}

// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package api

import (
	"net/http"
	"time"
)

// Model describes the loaded regression artifact.
//
// @Summary Loaded model metadata
// @Description Returns the artifact name, version, type, feature order and checksum
// @Tags Prediction
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ModelInfo} "Model metadata"
// @Failure 503 {object} models.APIResponse "Model not loaded"
// @Router /model [get]
func (h *Handler) Model(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	m := h.predictor.Model()
	if m == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Model not loaded", nil)
		return
	}

	respondSuccess(w, r, start, m.Info())
}

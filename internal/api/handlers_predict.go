// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/scorecast/internal/inference"
	"github.com/tomtom215/scorecast/internal/logging"
	"github.com/tomtom215/scorecast/internal/models"
	"github.com/tomtom215/scorecast/internal/validation"
)

// Predict scores one student.
//
// Unlike the other endpoints the body is not wrapped in the APIResponse
// envelope: success returns the PredictionResult and a rejected payload
// returns {"errors": {field: [messages]}}.
//
// @Summary Predict a performance index
// @Description Validates the five study inputs, scores them with the loaded regression model and returns rule-based recommendations and tips. The score is rounded to 2 decimal places.
// @Tags Prediction
// @Accept json
// @Produce json
// @Param input body models.PredictionInput true "Study inputs"
// @Success 200 {object} models.PredictionResult "Prediction"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid JSON or rejected input"
// @Failure 413 {object} models.ValidationErrorResponse "Body too large"
// @Failure 415 {object} models.ValidationErrorResponse "Body is not JSON"
// @Failure 500 {object} models.APIResponse "Model could not score the input"
// @Router /predict [post]
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			respondFieldErrors(w, http.StatusUnsupportedMediaType,
				fmt.Sprintf("Unsupported media type %q in request.", ct))
			return
		}
	}

	raw, status, msg := h.decodePayload(w, r)
	if status != 0 {
		respondFieldErrors(w, status, msg)
		return
	}

	result, err := h.predictor.Predict(r.Context(), raw)
	if err != nil {
		var fe *validation.FieldErrors
		var ie *inference.InferenceError
		switch {
		case errors.As(err, &fe):
			writeJSON(w, http.StatusBadRequest, models.ValidationErrorResponse{Errors: fe.Map()})
		case errors.As(err, &ie):
			respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "The model could not score this input", err)
		default:
			respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Prediction failed", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// decodePayload reads the body into a generic JSON value. Numbers are kept
// as json.Number so integer checks see the literal. An empty body is an
// empty object, which then fails field validation. A non-zero status means
// the body was rejected with msg.
func (h *Handler) decodePayload(w http.ResponseWriter, r *http.Request) (interface{}, int, string) {
	limit := h.config.API.MaxBodyBytes
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Request body exceeds %d bytes.", limit)
		}
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to read request body")
		return nil, http.StatusBadRequest, "JSON parse error - could not read request body"
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]interface{}{}, 0, ""
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, http.StatusBadRequest, "JSON parse error - " + err.Error()
	}
	var extra interface{}
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, http.StatusBadRequest, "JSON parse error - unexpected data after the top-level value"
	}
	return raw, 0, ""
}

func respondFieldErrors(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ValidationErrorResponse{
		Errors: map[string][]string{validation.NonFieldErrors: {msg}},
	})
}

// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/scorecast/internal/database"
	"github.com/tomtom215/scorecast/internal/models"
	"github.com/tomtom215/scorecast/internal/validation"
)

// RecordsQuery holds the parsed query parameters of GET /records.
type RecordsQuery struct {
	Limit           int      `validate:"min=1"`
	Offset          int      `validate:"min=0"`
	Extracurricular *bool    `validate:"omitempty"`
	MinPerformance  *float64 `validate:"omitempty,gte=0,lte=100"`
	MaxPerformance  *float64 `validate:"omitempty,gte=0,lte=100"`
	SamplePapers    []int    `validate:"omitempty,max=50"`
}

// parseRecordsQuery reads the query string. Unparseable values are reported
// alongside tag failures so the client sees every problem at once.
func (h *Handler) parseRecordsQuery(q url.Values) (RecordsQuery, *models.APIError) {
	rq := RecordsQuery{Limit: h.config.API.DefaultPageSize}
	details := map[string]interface{}{}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			details["limit"] = "limit must be an integer"
		}
		rq.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			details["offset"] = "offset must be an integer"
		}
		rq.Offset = n
	}
	if v := q.Get("extracurricular"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			details["extracurricular"] = "extracurricular must be true or false"
		} else {
			rq.Extracurricular = &b
		}
	}
	rq.MinPerformance = parseFloatParam(q, "min_performance", details)
	rq.MaxPerformance = parseFloatParam(q, "max_performance", details)
	rq.SamplePapers = parseIntListParam(q, "sample_papers", details)

	if len(details) == 0 {
		if verr := validation.ValidateStruct(&rq); verr != nil {
			details = verr.Details()
		}
	}
	if len(details) == 0 && rq.Limit > h.config.API.MaxPageSize {
		details["Limit"] = "Limit must be at most " + strconv.Itoa(h.config.API.MaxPageSize)
	}
	if len(details) == 0 && rq.MinPerformance != nil && rq.MaxPerformance != nil && *rq.MinPerformance > *rq.MaxPerformance {
		details["min_performance"] = "min_performance must not exceed max_performance"
	}

	if len(details) > 0 {
		return rq, &models.APIError{
			Code:    ErrCodeValidation,
			Message: "Invalid query parameters",
			Details: details,
		}
	}
	return rq, nil
}

func parseFloatParam(q url.Values, name string, details map[string]interface{}) *float64 {
	v := q.Get(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		details[name] = name + " must be a number"
		return nil
	}
	return &f
}

// parseIntListParam reads a comma-separated list of non-negative integers.
func parseIntListParam(q url.Values, name string, details map[string]interface{}) []int {
	v := q.Get(name)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			details[name] = name + " must be a comma-separated list of non-negative integers"
			return nil
		}
		out = append(out, n)
	}
	return out
}

// Records lists stored training rows.
//
// @Summary List dataset records
// @Description Pages through imported training rows ordered by insertion. Requires the dataset store.
// @Tags Dataset
// @Produce json
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Rows to skip"
// @Param extracurricular query bool false "Filter by extracurricular participation"
// @Param min_performance query number false "Minimum performance index (0-100)"
// @Param max_performance query number false "Maximum performance index (0-100)"
// @Param sample_papers query string false "Comma-separated sample paper counts to match, e.g. 2,3"
// @Success 200 {object} models.APIResponse{data=[]models.StudentRecord} "Records"
// @Failure 400 {object} models.APIResponse "Invalid query parameters"
// @Failure 500 {object} models.APIResponse "Database error"
// @Failure 503 {object} models.APIResponse "Dataset store disabled"
// @Router /records [get]
func (h *Handler) Records(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if !h.requireStore(w, r) {
		return
	}

	rq, apiErr := h.parseRecordsQuery(r.URL.Query())
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	filter := database.RecordFilter{
		Extracurricular: rq.Extracurricular,
		MinPerformance:  rq.MinPerformance,
		MaxPerformance:  rq.MaxPerformance,
		SamplePapers:    rq.SamplePapers,
	}

	total, err := h.store.CountRecords(r.Context(), filter)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeDatabase, "Failed to count records", err)
		return
	}

	records, err := h.store.ListRecords(r.Context(), filter, rq.Limit, rq.Offset)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeDatabase, "Failed to list records", err)
		return
	}
	if records == nil {
		records = []models.StudentRecord{}
	}

	meta := metadata(r, start)
	meta.Pagination = &models.PaginationInfo{
		Limit:      rq.Limit,
		Offset:     rq.Offset,
		TotalCount: total,
		HasMore:    int64(rq.Offset+len(records)) < total,
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     records,
		Metadata: meta,
	})
}

// RecordsSummary aggregates the stored dataset.
//
// @Summary Dataset summary
// @Description Row count, feature means and performance index range of the imported dataset
// @Tags Dataset
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.DatasetSummary} "Summary"
// @Failure 500 {object} models.APIResponse "Database error"
// @Failure 503 {object} models.APIResponse "Dataset store disabled"
// @Router /records/summary [get]
func (h *Handler) RecordsSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if !h.requireStore(w, r) {
		return
	}

	summary, err := h.store.Summary(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeDatabase, "Failed to summarize dataset", err)
		return
	}

	respondSuccess(w, r, start, summary)
}

func (h *Handler) requireStore(w http.ResponseWriter, r *http.Request) bool {
	if h.store == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Dataset store is disabled. Set DATASET_ENABLED=true to enable it.", nil)
		return false
	}
	return true
}

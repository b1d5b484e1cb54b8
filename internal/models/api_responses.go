// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package models

import "time"

// APIResponse is the envelope used by every endpoint except the prediction
// endpoint, whose body shape is fixed by its clients.
//
//	{"status":"success","data":{...},"metadata":{"timestamp":"..."}}
//	{"status":"error","data":null,"metadata":{...},"error":{"code":"DATABASE_ERROR","message":"..."}}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries per-response bookkeeping.
type Metadata struct {
	Timestamp   time.Time       `json:"timestamp"`
	RequestID   string          `json:"request_id,omitempty"`
	QueryTimeMS int64           `json:"query_time_ms,omitempty"`
	Pagination  *PaginationInfo `json:"pagination,omitempty"`
}

// APIError is a machine-readable error.
//
// Codes: VALIDATION_ERROR, NOT_FOUND, DATABASE_ERROR, SERVICE_UNAVAILABLE,
// INTERNAL_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// PaginationInfo describes an offset page.
type PaginationInfo struct {
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	TotalCount int64 `json:"total_count"`
	HasMore    bool  `json:"has_more"`
}

// ValidationErrorResponse is the 400 body of the prediction endpoint.
//
//	{"errors":{"sleep_hours":["Ensure this value is less than or equal to 24.0."]}}
type ValidationErrorResponse struct {
	Errors map[string][]string `json:"errors"`
}

// HealthStatus is returned by the health endpoint.
type HealthStatus struct {
	Status            string     `json:"status"` // healthy, degraded
	Version           string     `json:"version"`
	Model             *ModelInfo `json:"model,omitempty"`
	DatasetEnabled    bool       `json:"dataset_enabled"`
	DatabaseConnected bool       `json:"database_connected"`
	Uptime            float64    `json:"uptime_seconds"`
}

// ModelInfo describes the loaded regression artifact.
type ModelInfo struct {
	Name     string   `json:"name"`
	Version  string   `json:"version"`
	Type     string   `json:"type"`
	Trees    int      `json:"trees,omitempty"`
	MaxDepth int      `json:"max_depth,omitempty"`
	Features []string `json:"features"`
	Path     string   `json:"path,omitempty"`
	SHA256   string   `json:"sha256,omitempty"`
	LoadedAt string   `json:"loaded_at,omitempty"`
}

// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package inference

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by ArtifactLoadError.
var (
	ErrSchema          = errors.New("artifact does not match schema")
	ErrFeatureMismatch = errors.New("artifact features do not match the expected feature order")
	ErrMalformedTree   = errors.New("malformed decision tree")
)

// ArtifactLoadError is returned when the regression artifact cannot be read,
// parsed or validated. The server treats it as fatal at startup.
type ArtifactLoadError struct {
	Path string
	Err  error
}

func (e *ArtifactLoadError) Error() string {
	return fmt.Sprintf("load model artifact %s: %v", e.Path, e.Err)
}

func (e *ArtifactLoadError) Unwrap() error {
	return e.Err
}

// InferenceError is returned when a loaded model cannot score a vector.
type InferenceError struct {
	Reason string
}

func (e *InferenceError) Error() string {
	return "inference failed: " + e.Reason
}

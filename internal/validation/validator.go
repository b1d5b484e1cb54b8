// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

// Package validation validates inbound data using go-playground/validator v10.
//
// Two entry points exist:
//
//   - ValidateStruct for tagged request structs such as query parameters.
//   - ValidatePrediction for the raw prediction payload. It coerces loosely
//     typed JSON values, runs explicit per-field range checks and the
//     cross-field rules, and reports every violation at once as *FieldErrors.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the process-wide validator. It is safe for concurrent use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidationError is a single struct field failure.
type ValidationError struct {
	Field   string
	Tag     string
	Param   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// RequestValidationError collects struct field failures.
type RequestValidationError struct {
	Errors []ValidationError
}

func (ve *RequestValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(ve.Errors))
	for i, e := range ve.Errors {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// Details returns per-field messages suitable for an API error body.
func (ve *RequestValidationError) Details() map[string]interface{} {
	details := make(map[string]interface{}, len(ve.Errors))
	for _, e := range ve.Errors {
		details[e.Field] = e.Message
	}
	return details
}

// ValidateStruct validates a tagged struct.
//
//	type RecordsQuery struct {
//	    Limit int `validate:"min=1,max=1000"`
//	}
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{Errors: []ValidationError{{Field: "unknown", Tag: "unknown", Message: err.Error()}}}
	}

	out := make([]ValidationError, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = ValidationError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: translateError(fe),
		}
	}
	return &RequestValidationError{Errors: out}
}

var paramTemplates = map[string]string{
	"min":   "%s must be at least %s",
	"max":   "%s must be at most %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"oneof": "%s must be one of: %s",
}

func translateError(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return fmt.Sprintf("%s is required", fe.Field())
	}
	if tmpl, ok := paramTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(tmpl, fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}

// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

// Package predict runs the prediction pipeline shared by the HTTP API and the
// CLI: validate the raw payload, score it with the regression model, build
// advice, and round the score.
package predict

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/scorecast/internal/inference"
	"github.com/tomtom215/scorecast/internal/logging"
	"github.com/tomtom215/scorecast/internal/metrics"
	"github.com/tomtom215/scorecast/internal/models"
	"github.com/tomtom215/scorecast/internal/recommend"
	"github.com/tomtom215/scorecast/internal/validation"
)

// Service is safe for concurrent use; it holds no per-request state.
type Service struct {
	model inference.Regressor
}

// NewService creates a Service backed by model.
func NewService(model inference.Regressor) *Service {
	return &Service{model: model}
}

// Model returns the regressor in use.
func (s *Service) Model() inference.Regressor {
	return s.model
}

// Predict validates raw (a decoded JSON object) and returns the prediction.
//
// Errors:
//   - *validation.FieldErrors when the payload is rejected
//   - *inference.InferenceError when the model cannot score the input
func (s *Service) Predict(ctx context.Context, raw interface{}) (*models.PredictionResult, error) {
	start := time.Now()

	input, err := validation.ValidatePrediction(raw)
	if err != nil {
		var fe *validation.FieldErrors
		if errors.As(err, &fe) {
			metrics.RecordValidationFailure(fe.Fields())
		}
		metrics.RecordPrediction(metrics.OutcomeValidationError, time.Since(start))
		logging.Ctx(ctx).Debug().Err(err).Msg("Prediction input rejected")
		return nil, err
	}

	result, err := s.PredictInput(ctx, input)
	if err != nil {
		metrics.RecordPrediction(metrics.OutcomeInferenceError, time.Since(start))
		return nil, err
	}

	metrics.RecordPrediction(metrics.OutcomeSuccess, time.Since(start))
	return result, nil
}

// PredictInput scores an already validated input.
func (s *Service) PredictInput(ctx context.Context, input models.PredictionInput) (*models.PredictionResult, error) {
	score, err := s.model.Predict(input.Features())
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).
			Interface("input", input).
			Msg("Model inference failed")
		return nil, err
	}

	advice := recommend.Generate(input, score)
	rounded := models.NewScore(score)
	metrics.RecordPredictedScore(float64(rounded), advice.Rules)

	logging.Ctx(ctx).Debug().
		Float64("score", float64(rounded)).
		Int("recommendations", len(advice.Recommendations)).
		Msg("Prediction served")

	return &models.PredictionResult{
		PredictedPerformanceIndex: rounded,
		Recommendations:           advice.Recommendations,
		Tips:                      advice.Tips,
	}, nil
}

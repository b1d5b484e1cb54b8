// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/scorecast/internal/config"
	"github.com/tomtom215/scorecast/internal/middleware"
	"github.com/tomtom215/scorecast/internal/models"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler *Handler
	config  *config.Config
}

// NewRouter creates a Router for handler.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{handler: handler, config: cfg}
}

// chiMiddleware adapts http.HandlerFunc middleware to chi's
// func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Setup builds the HTTP handler tree.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.config.Security.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	// ========================
	// API v1
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chiMiddleware(middleware.SecurityHeaders))
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Route("/health", func(r chi.Router) {
			r.Get("/", router.handler.Health)
			r.Get("/live", router.handler.HealthLive)
			r.Get("/ready", router.handler.HealthReady)
		})

		r.Post("/predict", router.handler.Predict)
		r.Get("/model", router.handler.Model)

		r.Get("/records", router.handler.Records)
		r.Get("/records/summary", router.handler.RecordsSummary)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	if router.config.Server.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("list"),
			httpSwagger.DomID("swagger-ui"),
		))
	}

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondAPIError(w, r, http.StatusNotFound, &models.APIError{
		Code:    ErrCodeNotFound,
		Message: "Resource not found",
	})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondAPIError(w, r, http.StatusMethodNotAllowed, &models.APIError{
		Code:    ErrCodeMethodNotAllowed,
		Message: "Method " + r.Method + " is not allowed on " + r.URL.Path,
	})
}

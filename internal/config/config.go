// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

// Package config loads Scorecast configuration.
//
// Values are layered with koanf, lowest priority first:
//
//  1. Built-in defaults (defaultConfig)
//  2. A YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml, /etc/scorecast/config.yaml
//  3. Environment variables (see envTransformFunc for the supported names)
//
// Example config.yaml:
//
//	server:
//	  port: 8000
//	model:
//	  path: /models/performance_model.json
//	database:
//	  enabled: true
//	  path: /data/scorecast.duckdb
//	logging:
//	  level: debug
//	  format: console
package config

import (
	"time"

	"github.com/tomtom215/scorecast/internal/logging"
)

// Config is the complete runtime configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Model    ModelConfig    `koanf:"model"`
	Database DatabaseConfig `koanf:"database"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
	SwaggerEnabled  bool          `koanf:"swagger_enabled"`
}

// ModelConfig points at the trained regression artifact loaded at startup.
type ModelConfig struct {
	Path string `koanf:"path"`
}

// DatabaseConfig configures the DuckDB dataset store. The store is optional;
// predictions never touch it.
type DatabaseConfig struct {
	Enabled            bool          `koanf:"enabled"`
	Path               string        `koanf:"path"`
	MaxMemory          string        `koanf:"max_memory"`
	Threads            int           `koanf:"threads"` // 0 = DuckDB default
	CheckpointInterval time.Duration `koanf:"checkpoint_interval"`
}

// APIConfig holds request and pagination limits.
type APIConfig struct {
	DefaultPageSize int   `koanf:"default_page_size"`
	MaxPageSize     int   `koanf:"max_page_size"`
	MaxBodyBytes    int64 `koanf:"max_body_bytes"`
}

// SecurityConfig holds browser-facing security settings.
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig mirrors logging.Config for the fields that can be configured.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// ToLoggingConfig converts to the logging package configuration.
func (l LoggingConfig) ToLoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}

// IsProduction reports whether the server runs in production mode.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// Load reads configuration from defaults, the first config file found and
// the environment.
func Load() (*Config, error) {
	return LoadFrom("")
}

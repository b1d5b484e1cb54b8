// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %v, want 30s", cfg.Server.Timeout)
	}
	if cfg.Database.Enabled {
		t.Error("Database.Enabled should be false by default")
	}
	if cfg.API.MaxBodyBytes != 65536 {
		t.Errorf("API.MaxBodyBytes = %d, want 65536", cfg.API.MaxBodyBytes)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env  string
		want string
	}{
		{"MODEL_PATH", "model.path"},
		{"HTTP_PORT", "server.port"},
		{"DUCKDB_PATH", "database.path"},
		{"DATASET_ENABLED", "database.enabled"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"LOG_LEVEL", "logging.level"},
		{"HOME", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9100
  environment: staging
model:
  path: /srv/model.json
database:
  enabled: true
  path: /srv/data.duckdb
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("HTTP_PORT", "9200")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server.Port != 9200 {
		t.Errorf("env should override file: port = %d, want 9200", cfg.Server.Port)
	}
	if cfg.Model.Path != "/srv/model.json" {
		t.Errorf("Model.Path = %q", cfg.Model.Path)
	}
	if !cfg.Database.Enabled || cfg.Database.Path != "/srv/data.duckdb" {
		t.Errorf("Database = %+v", cfg.Database)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.API.DefaultPageSize != 20 {
		t.Errorf("unset values should keep defaults, DefaultPageSize = %d", cfg.API.DefaultPageSize)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadFromEnvRejectsInvalid(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "none.yaml"))
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("HTTP_PORT", "70000")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "HTTP_PORT") {
		t.Fatalf("expected HTTP_PORT validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"zero port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"negative timeout", func(c *Config) { c.Server.Timeout = -time.Second }, "HTTP_TIMEOUT"},
		{"unknown environment", func(c *Config) { c.Server.Environment = "qa" }, "ENVIRONMENT"},
		{"empty model path", func(c *Config) { c.Model.Path = " " }, "MODEL_PATH"},
		{"database disabled ignores path", func(c *Config) { c.Database.Path = "" }, ""},
		{"database enabled needs path", func(c *Config) {
			c.Database.Enabled = true
			c.Database.Path = ""
		}, "DUCKDB_PATH"},
		{"checkpoint interval too short", func(c *Config) {
			c.Database.Enabled = true
			c.Database.CheckpointInterval = time.Millisecond
		}, "DUCKDB_CHECKPOINT_INTERVAL"},
		{"page sizes inverted", func(c *Config) { c.API.MaxPageSize = 5 }, "API_MAX_PAGE_SIZE"},
		{"tiny body limit", func(c *Config) { c.API.MaxBodyBytes = 10 }, "API_MAX_BODY_BYTES"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestToLoggingConfig(t *testing.T) {
	t.Parallel()

	lc := LoggingConfig{Level: "warn", Format: "console", Caller: true}.ToLoggingConfig()
	if lc.Level != "warn" || lc.Format != "console" || !lc.Caller || lc.Output == nil {
		t.Errorf("ToLoggingConfig() = %+v", lc)
	}
}

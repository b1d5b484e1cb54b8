// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

/*
Package main is the entry point for the Scorecast server.

Scorecast predicts a student's performance index (0-100) from five study
habit inputs using a pre-trained regression model, and returns study
recommendations and tips alongside the score.

# Application Architecture

The server runs under Suture v4 process supervision:

	RootSupervisor ("scorecast")
	├── DataSupervisor ("data-layer")
	│   └── DuckDB checkpoint service (only with DATASET_ENABLED=true)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment
 2. Logging: zerolog with JSON/console output modes
 3. Model: JSON artifact, schema-checked and loaded once
 4. Dataset store: DuckDB (optional)
 5. Supervisor Tree
 6. HTTP Server: Chi router with middleware stack

# Configuration

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	HTTP_PORT=8000               # HTTP server port
	HTTP_HOST=0.0.0.0
	MODEL_PATH=/models/performance_model.json
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console
	CORS_ORIGINS=*               # comma separated
	SWAGGER_ENABLED=true

	DATASET_ENABLED=false        # serve /records from DuckDB
	DUCKDB_PATH=/data/scorecast.duckdb
	DUCKDB_MAX_MEMORY=512MB

The dataset store is filled offline with scorectl import.

# Graceful Shutdown

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for SHUTDOWN_TIMEOUT, then the DuckDB connection is
checkpointed and closed.
*/
package main

// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package config loads Marquee configuration with Koanf v2.

Sources are layered, later ones winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, ./config.yaml or /etc/marquee/config.yaml
 3. Environment variables mapped by envTransformFunc

# Environment Variables

	STORAGE_BACKEND            memory | duckdb | postgres (default: memory)
	DUCKDB_PATH                DuckDB file (default: /data/marquee.duckdb)
	DUCKDB_MAX_MEMORY          DuckDB memory cap (default: 1GB)
	POSTGRES_DSN               PostgreSQL connection string
	POSTGRES_MAX_CONNS         pool size (default: 10)
	POSTGRES_MIGRATE_ON_START  run goose migrations at boot (default: true)
	HTTP_HOST / HTTP_PORT      listen address (default: 0.0.0.0:8080)
	API_DEFAULT_POPULAR_COUNT  /films/popular size when count is omitted (default: 10)
	CORS_ORIGINS               comma-separated origins (default: *)
	RATE_LIMIT_REQUESTS        requests per window per client (default: 100)
	RATE_LIMIT_WINDOW          window length (default: 1m)
	LOG_LEVEL / LOG_FORMAT     info / json

# Example YAML

	storage:
	  backend: postgres
	postgres:
	  dsn: postgres://marquee:secret@db:5432/marquee?sslmode=disable
	server:
	  port: 8080
	logging:
	  level: debug
	  format: console

Validate runs after loading and rejects unknown backends, missing DSNs and
out-of-range limits.
*/
package config

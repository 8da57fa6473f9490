// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// shopman client and the reference backend. It is populated by merging
// values from environment variables (optionally seeded from a .env file),
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds access-token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the server database and the client durable store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeout of the reference backend.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the Remote Authority address used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds intervals and limits of client background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// ListName is the list the client opens on start.
	// Env: LIST
	ListName string `env:"LIST"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC key used to sign list access tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued access token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the validity of an access token. Defaults to 24h.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups storage backend settings.
type Storage struct {
	// DB is the PostgreSQL database of the reference backend.
	DB DB `envPrefix:"DB_"`

	// Local is the client durable store.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings for the server database.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Local holds settings of the client durable store.
type Local struct {
	// DSN is the SQLite database file. "memory" selects the in-memory store.
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`

	// LogDir is the directory of the client "logs" file.
	// Env: STORAGE_LOCAL_LOG_DIR
	LogDir string `env:"LOG_DIR"`
}

// Server holds settings of the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's view of the Remote Authority.
type Adapter struct {
	// HTTPAddress is the base address of the Remote Authority.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for client background jobs.
type Workers struct {
	// SyncInterval is the period of the background queue drain.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ProbeInterval is the period of the connectivity probe.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// MaxRetries is the number of attempts before a queued operation is
	// dropped. Defaults to 3.
	// Env: WORKERS_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (the first non-zero
// value of a field wins):
//  1. Environment variables (a .env file in the working directory is loaded
//     first when present)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	// DefaultHTTPAddress is the backend address used when none is configured:
	// the local development server.
	DefaultHTTPAddress = "http://localhost:8000"

	// DefaultRequestTimeout bounds every request sent by the transport.
	// It is fixed and deliberately not part of the configurable surface.
	DefaultRequestTimeout = 10 * time.Second

	// DefaultLogLevel is the zerolog level name used when none is configured.
	DefaultLogLevel = "info"
)

// StructuredConfig is the top-level configuration container for the
// items client. It is populated by merging defaults, environment variables
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the backend address used by the transport.
	Adapter Adapter

	// Storage holds the location of the credential token store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults and environment variables.
	// Populated via the CONFIG environment variable.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds configuration for the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the backend
	// (e.g. "http://localhost:8000" or "api.example.com").
	// Env: API_URL
	HTTPAddress string `env:"API_URL"`
}

// Storage groups the configuration of local persistence.
type Storage struct {
	// Session holds the credential token store settings.
	Session Session `envPrefix:"SESSION_"`
}

// Session holds the settings of the credential token store.
type Session struct {
	// DSN is the SQLite file path the token is persisted in. Empty means an
	// in-memory store that lives as long as the process.
	// Env: STORAGE_SESSION_DSN
	DSN string `env:"DSN"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "error", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		build()
}

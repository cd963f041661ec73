// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from a .env file, environment variables and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Credentials holds the Money Dashboard login pair.
	Credentials Credentials `envPrefix:"MONEYDASHBOARD_"`

	// App holds client behaviour settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the transport settings applied to every session.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the environment.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Credentials holds the account login pair.
type Credentials struct {
	// Email is the account login.
	// Env: MONEYDASHBOARD_EMAIL
	Email string `env:"EMAIL"`

	// Password is the account password.
	// Env: MONEYDASHBOARD_PASSWORD
	Password string `env:"PASSWORD"`
}

// App holds client behaviour settings.
type App struct {
	// TransactionsLimit is the limitTo value used when the caller does not
	// pass one. Zero selects DefaultTransactionsLimit.
	// Env: APP_TRANSACTIONS_LIMIT
	TransactionsLimit int `env:"TRANSACTIONS_LIMIT"`
}

// Adapter holds outbound transport settings.
type Adapter struct {
	// RequestTimeout bounds every single request (e.g. "30s", "1m").
	// Zero means no timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// Role is attached to every log entry as the "role" field.
	// Env: LOG_ROLE
	Role string `env:"ROLE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (later sources override
// earlier non-zero fields):
//  1. .env file in the working directory, if present
//  2. Environment variables
//  3. JSON file (path resolved from the sources above)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(DotEnvFile).
		withEnv().
		withJSON().
		build()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-note-keeper server and client. It is populated by merging values from a
// .env file, environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token signing key,
	// token lifetimes and the password hashing cost.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings used by the API client (cmd/client).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Loaded once at startup; the server refuses to start without it.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token and
	// validated on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens issued by the login endpoint
	// (e.g. "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// DefaultTokenDuration is the lifetime used when a token is issued
	// without an explicit duration.
	// Env: APP_DEFAULT_TOKEN_DURATION
	DefaultTokenDuration time.Duration `env:"DEFAULT_TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost factor for password hashes.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Version is the version string of the running application, exposed via
	// the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before its context is cancelled (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the storage backend.
type DB struct {
	// DSN selects and configures the backend:
	//   - "memory" keeps everything in process memory;
	//   - "postgres://..." or "postgresql://..." connects through pgx;
	//   - "sqlite://path/to/file.db" opens an embedded SQLite database.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration of the outbound API client.
type Adapter struct {
	// HTTPAddress is the base URL of the notes server
	// (e.g. "http://localhost:8000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is a bearer token attached to authenticated requests.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. .env file in the working directory
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Zero fields left after merging are filled from [Defaults].
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

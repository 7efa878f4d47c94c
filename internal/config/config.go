// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// neuprint CLI and the sandbox server. It is populated by merging values from
// defaults, environment variables, an optional JSON file and command-line
// flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with NEUPRINT_ (see parseEnv).
type StructuredConfig struct {
	// Client holds the connection settings for a neuPrint server.
	Client Client

	// Output controls how query results are rendered.
	Output Output `envPrefix:"OUTPUT_"`

	// Storage holds the local query history settings.
	Storage Storage

	// Sandbox holds the settings of the local fake neuPrint server.
	Sandbox Sandbox `envPrefix:"SANDBOX_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via NEUPRINT_CONFIG or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Client holds neuPrint connection settings.
type Client struct {
	// Server is the neuPrint address, either a bare host or an https URL.
	// Env: NEUPRINT_SERVER
	Server string `env:"SERVER"`

	// Token is the bearer token or the JSON credential document downloaded
	// from the neuPrint account page.
	// Env: NEUPRINT_APPLICATION_CREDENTIALS
	Token string `env:"APPLICATION_CREDENTIALS"`

	// RequestTimeout bounds every request sent to the server.
	// Env: NEUPRINT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CACertFile is an extra PEM bundle trusted for the server's TLS
	// certificate, e.g. the certificate written by the sandbox.
	// Env: NEUPRINT_CA_CERT
	CACertFile string `env:"CA_CERT"`

	// Debug enables per-request debug logging on stderr.
	// Env: NEUPRINT_DEBUG
	Debug bool `env:"DEBUG"`
}

// Output holds result rendering settings.
type Output struct {
	// Format is one of json, table or csv.
	// Env: NEUPRINT_OUTPUT_FORMAT
	Format string `env:"FORMAT"`
}

// Storage holds the query history backend settings.
type Storage struct {
	// HistoryDSN is either a SQLite file path or a postgres:// URL. When
	// empty, query history is not recorded.
	// Env: NEUPRINT_HISTORY_DSN
	HistoryDSN string `env:"HISTORY_DSN"`
}

// Sandbox holds the settings of the local fake neuPrint server.
type Sandbox struct {
	// Address is the listen address in host:port form.
	// Env: NEUPRINT_SANDBOX_ADDRESS
	Address string `env:"ADDRESS"`

	// FixturesPath points to a JSON file with canned responses. Built-in
	// fixtures are served when empty.
	// Env: NEUPRINT_SANDBOX_FIXTURES
	FixturesPath string `env:"FIXTURES"`

	// SignKey is the HS256 key used to verify bearer tokens. When empty any
	// non-empty bearer token is accepted.
	// Env: NEUPRINT_SANDBOX_SIGN_KEY
	SignKey string `env:"SIGN_KEY"`

	// TLSCertFile and TLSKeyFile hold the PEM certificate and key to serve.
	// When both are empty a self-signed certificate is generated at startup.
	// Env: NEUPRINT_SANDBOX_TLS_CERT, NEUPRINT_SANDBOX_TLS_KEY
	TLSCertFile string `env:"TLS_CERT"`
	TLSKeyFile  string `env:"TLS_KEY"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: NEUPRINT_SANDBOX_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Default values applied before any other source.
const (
	DefaultRequestTimeout  = time.Minute
	DefaultOutputFormat    = "table"
	DefaultSandboxAddress  = "127.0.0.1:11000"
	DefaultShutdownTimeout = 10 * time.Second
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Client:  Client{RequestTimeout: DefaultRequestTimeout},
		Output:  Output{Format: DefaultOutputFormat},
		Sandbox: Sandbox{Address: DefaultSandboxAddress, ShutdownTimeout: DefaultShutdownTimeout},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. JSON file (path taken from the flags, else from NEUPRINT_CONFIG)
//  4. Command-line flags
//
// flags may be nil.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON(flags.jsonPath()).
		withFlags(flags).
		build()
}

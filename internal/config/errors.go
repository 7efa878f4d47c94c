package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidOutputFormat indicates an output format other than json,
	// table or csv.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidTimeout indicates a negative timeout.
	ErrInvalidTimeout = errors.New("invalid timeout")
	// ErrInvalidSandboxAddress indicates a sandbox listen address that is
	// not in host:port form.
	ErrInvalidSandboxAddress = errors.New("invalid sandbox address")
	// ErrIncompleteTLSPair indicates that only one of the sandbox TLS
	// certificate and key was given.
	ErrIncompleteTLSPair = errors.New("sandbox tls certificate and key must be given together")
	// ErrMissingServer indicates that a command needs a server address but
	// none was configured.
	ErrMissingServer = errors.New("no neuPrint server configured: use --server or NEUPRINT_SERVER")
)

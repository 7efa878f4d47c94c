package server

import (
	"context"
	"net"
)

// Server defines the lifecycle of the sandbox server.
//
// All serving methods block until the server stops. Cancelling the context
// starts a graceful shutdown bounded by the configured shutdown timeout.
type Server interface {
	// RunServer serves on the configured address until SIGINT, SIGTERM or
	// SIGQUIT is received.
	RunServer() error

	// Run listens on the configured address and serves until ctx is done.
	Run(ctx context.Context) error

	// Serve accepts TLS connections on ln until ctx is done.
	Serve(ctx context.Context, ln net.Listener) error

	// CertificatePEM returns the served leaf certificate, PEM encoded, so
	// clients can trust it.
	CertificatePEM() []byte
}

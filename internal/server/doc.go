// Package server runs the neuPrint sandbox over HTTPS.
//
// It owns the listener lifecycle: TLS setup (a configured key pair or a
// generated self-signed certificate), signal handling and graceful shutdown.
package server

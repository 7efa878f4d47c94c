// Package http implements the sandbox: a local stand-in for a neuPrint
// server.
//
// It serves the metadata endpoints and /api/custom/custom from fixtures,
// with the same request and response shapes as neuPrint. Request tracing,
// access logging, bearer authentication and metrics are handled by
// middleware before requests reach the handlers.
package http

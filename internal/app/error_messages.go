// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared message constants used across the neuPrint
// sandbox handlers and middleware.
//
// All Msg* constants are human-readable strings written into the "error"
// field of JSON response bodies or into log entries. They follow the wording
// of the real neuPrint server where one exists, so client code sees the same
// messages against both.
package app

const (
	// MsgInvalidJSON is returned when the body of a custom query request
	// cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgTokenExpired is returned when a bearer token carries an expiry in
	// the past.
	MsgTokenExpired = "token expired"

	// MsgTokenVerified is logged after a bearer token passed verification.
	MsgTokenVerified = "token verified"

	// MsgMethodNotAllowed prefixes the error returned for a known path
	// requested with an unsupported method.
	MsgMethodNotAllowed = "method not allowed"
)

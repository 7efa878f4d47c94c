// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandler = errors.New("no handler to serve")

	// ErrLoadCertificate is returned by [NewServer] when the configured TLS
	// key pair cannot be used.
	ErrLoadCertificate = errors.New("error loading TLS certificate")
)

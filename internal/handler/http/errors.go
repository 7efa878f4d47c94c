// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors reported by the custom query handler and fixture loading.
var (
	// ErrMissingCypher is returned when the request body of
	// /api/custom/custom has no "cypher" field.
	ErrMissingCypher = errors.New(`request body has no "cypher" field`)

	// ErrInvalidFixture is returned by [LoadFixtures] for fixture files
	// that cannot be served.
	ErrInvalidFixture = errors.New("invalid fixture")
)

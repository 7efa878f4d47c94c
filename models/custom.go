// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CustomRequest is the body of GET /api/custom/custom.
type CustomRequest struct {
	// Cypher is forwarded verbatim; the client never parses it.
	Cypher string `json:"cypher"`
}

// CustomResponse is the tabular document returned by the custom endpoint.
type CustomResponse struct {
	// Columns holds the result column labels in order.
	Columns []string `json:"columns"`

	// Data holds one slice per row, aligned with Columns.
	Data [][]any `json:"data"`
}

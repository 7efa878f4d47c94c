// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HistoryEntry records one custom query issued through the CLI.
type HistoryEntry struct {
	// ID is a time-ordered UUID assigned when the entry is created.
	ID string `json:"id"`

	// Server is the normalized server URL the query was sent to.
	Server string `json:"server"`

	// Query is the cypher text as sent.
	Query string `json:"query"`

	// Format is the requested result format ("json" or "table").
	Format string `json:"format"`

	// RowCount is the number of rows returned, zero for failed queries.
	RowCount int `json:"row_count"`

	// Status is the HTTP status of the failed request, zero when the request
	// succeeded or never reached the server.
	Status int `json:"status"`

	// Error holds the error text of a failed query, empty on success.
	Error string `json:"error,omitempty"`

	// Duration is the wall time spent on the request.
	Duration time.Duration `json:"duration"`

	// CreatedAt is when the query was issued.
	CreatedAt time.Time `json:"created_at"`
}

// Succeeded reports whether the query completed without error.
func (h HistoryEntry) Succeeded() bool {
	return h.Error == ""
}

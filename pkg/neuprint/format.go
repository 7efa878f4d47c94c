// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package neuprint

import (
	"fmt"
	"strings"
)

// Format selects how FetchCustom returns the query result.
type Format string

const (
	// FormatJSON returns the decoded response document unchanged.
	FormatJSON Format = "json"
	// FormatTable returns a [Table] built from the "columns" and "data" fields.
	FormatTable Format = "table"
)

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	return f == FormatJSON || f == FormatTable
}

func (f Format) String() string {
	return string(f)
}

// ParseFormat converts user input into a Format. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: unsupported format %q (want %q or %q)", ErrInvalidArgument, s, FormatJSON, FormatTable)
	}
	return f, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package neuprint

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/connectome-neuprint/neuprint-go/models"
)

// Table is an in-memory query result with named columns and ordered rows.
// Cell values are whatever encoding/json produced with UseNumber: json.Number,
// string, bool, nil, []any or map[string]any.
type Table struct {
	columns []string
	rows    [][]any
	index   map[string]int
}

// NewTable builds a Table, checking that every row has one value per column.
func NewTable(columns []string, rows [][]any) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrProtocol, i, len(row), len(columns))
		}
	}

	return &Table{columns: columns, rows: rows, index: index}, nil
}

func tableFromResponse(resp models.CustomResponse) (*Table, error) {
	if resp.Columns == nil {
		return nil, fmt.Errorf("%w: custom query response has no \"columns\" field", ErrProtocol)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("%w: custom query response has no \"data\" field", ErrProtocol)
	}
	return NewTable(resp.Columns, resp.Data)
}

// Columns returns the column labels in server order.
func (t *Table) Columns() []string {
	return t.columns
}

// Rows returns the rows in server order.
func (t *Table) Rows() [][]any {
	return t.rows
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns row i.
func (t *Table) Row(i int) ([]any, error) {
	if i < 0 || i >= len(t.rows) {
		return nil, fmt.Errorf("%w: row %d out of range [0, %d)", ErrInvalidArgument, i, len(t.rows))
	}
	return t.rows[i], nil
}

// Column returns every value of the named column. When a label repeats, the
// first occurrence wins.
func (t *Table) Column(name string) ([]any, error) {
	idx, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown column %q", ErrInvalidArgument, name)
	}

	values := make([]any, len(t.rows))
	for i, row := range t.rows {
		values[i] = row[idx]
	}
	return values, nil
}

// Records returns one map per row keyed by column label.
func (t *Table) Records() []map[string]any {
	records := make([]map[string]any, len(t.rows))
	for i, row := range t.rows {
		rec := make(map[string]any, len(t.columns))
		for j, name := range t.columns {
			if _, seen := rec[name]; !seen {
				rec[name] = row[j]
			}
		}
		records[i] = rec
	}
	return records
}

// WriteCSV writes a header line followed by one line per row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(t.columns))
	for i, row := range t.rows {
		for j, v := range row {
			record[j] = FormatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// MarshalJSON encodes the table back into the {"columns", "data"} shape.
func (t *Table) MarshalJSON() ([]byte, error) {
	rows := t.rows
	if rows == nil {
		rows = [][]any{}
	}
	return json.Marshal(models.CustomResponse{Columns: t.columns, Data: rows})
}

// FormatValue renders a decoded JSON value as a single text cell. Numbers keep
// their JSON spelling so large body ids are not printed in exponent form.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
}

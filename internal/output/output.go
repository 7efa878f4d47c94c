// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package output renders neuPrint documents and query results for the
// terminal as indented JSON, a bordered table or CSV.
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/connectome-neuprint/neuprint-go/models"
	"github.com/connectome-neuprint/neuprint-go/pkg/neuprint"
)

// Format is the user-facing output format.
type Format string

const (
	FormatJSON  Format = "json"
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

// ParseFormat accepts json, table or csv in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatTable, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// QueryFormat is the result format to request from the server. Table and
// CSV output both need the tabular result.
func (f Format) QueryFormat() neuprint.Format {
	if f == FormatJSON {
		return neuprint.FormatJSON
	}
	return neuprint.FormatTable
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Faint(true)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// Printer writes rendered output to w and optionally copies it to the
// system clipboard.
type Printer struct {
	w      io.Writer
	format Format
	copy   bool

	writeClipboard func(string) error
}

// NewPrinter returns a Printer for format.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{
		w:              w,
		format:         format,
		writeClipboard: clipboard.WriteAll,
	}
}

// CopyToClipboard makes every subsequent render also land in the clipboard.
func (p *Printer) CopyToClipboard() *Printer {
	p.copy = true
	return p
}

// Document renders a metadata document. Documents have no tabular shape so
// they are always printed as JSON.
func (p *Printer) Document(doc any) error {
	text, err := renderJSON(doc)
	if err != nil {
		return err
	}
	return p.emit(text)
}

// Result renders a custom query result in the printer's format.
func (p *Printer) Result(res *neuprint.Result) error {
	if res == nil {
		return errors.New("nil result")
	}

	var (
		text string
		err  error
	)
	switch {
	case res.Table == nil:
		text, err = renderJSON(res.JSON)
	case p.format == FormatCSV:
		text, err = renderCSV(res.Table)
	case p.format == FormatJSON:
		text, err = renderJSON(res.Table)
	default:
		text = RenderTable(res.Table)
	}
	if err != nil {
		return err
	}
	return p.emit(text)
}

// History renders recorded queries.
func (p *Printer) History(entries []models.HistoryEntry) error {
	if p.format == FormatJSON {
		text, err := renderJSON(entries)
		if err != nil {
			return err
		}
		return p.emit(text)
	}

	columns := []string{"id", "created_at", "server", "format", "rows", "status", "duration", "query"}
	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		status := "ok"
		if !e.Succeeded() {
			status = "error"
			if e.Status != 0 {
				status = strconv.Itoa(e.Status)
			}
		}
		rows = append(rows, []any{
			e.ID,
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.Server,
			e.Format,
			e.RowCount,
			status,
			e.Duration.Round(time.Millisecond).String(),
			e.Query,
		})
	}

	t, err := neuprint.NewTable(columns, rows)
	if err != nil {
		return err
	}
	if p.format == FormatCSV {
		text, err := renderCSV(t)
		if err != nil {
			return err
		}
		return p.emit(text)
	}
	return p.emit(RenderTable(t))
}

func (p *Printer) emit(text string) error {
	if _, err := io.WriteString(p.w, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if p.copy {
		if err := p.writeClipboard(text); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}

// RenderTable draws t as a bordered table followed by a row count.
func RenderTable(t *neuprint.Table) string {
	lt := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(t.Columns()...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, row := range t.Rows() {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = neuprint.FormatValue(v)
		}
		lt.Row(cells...)
	}

	noun := "rows"
	if t.Len() == 1 {
		noun = "row"
	}
	return lt.String() + "\n" + footerStyle.Render(fmt.Sprintf("(%d %s)", t.Len(), noun)) + "\n"
}

func renderJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(data) + "\n", nil
}

func renderCSV(t *neuprint.Table) (string, error) {
	var buf bytes.Buffer
	if err := t.WriteCSV(&buf); err != nil {
		return "", fmt.Errorf("encode csv: %w", err)
	}
	return buf.String(), nil
}

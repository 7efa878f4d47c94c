package tui

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/connectome-neuprint/neuprint-go/pkg/neuprint"
)

const (
	maxColumnWidth = 40
	// title, divider, blank line, footer, padding
	chromeHeight = 8
)

type tableModel struct {
	title  string
	source *neuprint.Table
	table  table.Model

	detail bool
	status string

	writeClipboard func(string) error
}

func newTableModel(title string, src *neuprint.Table) tableModel {
	columns := make([]table.Column, len(src.Columns()))
	for i, name := range src.Columns() {
		columns[i] = table.Column{Title: name, Width: lipgloss.Width(name)}
	}

	rows := make([]table.Row, src.Len())
	for r, values := range src.Rows() {
		row := make(table.Row, len(values))
		for c, v := range values {
			cell := neuprint.FormatValue(v)
			row[c] = cell
			columns[c].Width = min(max(columns[c].Width, lipgloss.Width(cell)), maxColumnWidth)
		}
		rows[r] = row
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(src.Len()+1, 20)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	t.SetStyles(styles)

	return tableModel{
		title:          title,
		source:         src,
		table:          t,
		writeClipboard: clipboard.WriteAll,
	}
}

func (m tableModel) Init() tea.Cmd { return nil }

func (m tableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-chromeHeight, 3))
		m.table.SetWidth(max(msg.Width-4, 10))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.esc):
			if m.detail {
				m.detail = false
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, keys.enter):
			if m.source.Len() > 0 {
				m.detail = !m.detail
			}
			return m, nil
		case key.Matches(msg, keys.copy):
			m.status = m.copyRows(m.table.Cursor(), m.table.Cursor()+1)
			return m, nil
		case key.Matches(msg, keys.copyAll):
			m.status = m.copyRows(0, m.source.Len())
			return m, nil
		}
	}

	if m.detail {
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m tableModel) View() string {
	title := fmt.Sprintf("%s  (%d rows)", fitText(m.title, 60), m.source.Len())
	help := "↑/↓ move  enter row detail  c copy row  C copy all  q quit"

	var body string
	if m.detail {
		body = m.rowDetail()
		help = "esc back  c copy row  q quit"
	} else {
		body = m.table.View()
	}
	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}

	return renderPage(title, body, help)
}

func (m tableModel) rowDetail() string {
	row, err := m.source.Row(m.table.Cursor())
	if err != nil {
		return ""
	}

	width := 0
	for _, name := range m.source.Columns() {
		width = max(width, lipgloss.Width(name))
	}

	var b strings.Builder
	for i, name := range m.source.Columns() {
		fmt.Fprintf(&b, "%-*s  %s\n", width, name, neuprint.FormatValue(row[i]))
	}
	return strings.TrimRight(b.String(), "\n")
}

// copyRows puts rows [from, to) with a header line into the clipboard as CSV
// and returns a status line.
func (m tableModel) copyRows(from, to int) string {
	if from >= to || to > m.source.Len() {
		return "nothing to copy"
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(m.source.Columns())
	for _, values := range m.source.Rows()[from:to] {
		record := make([]string, len(values))
		for i, v := range values {
			record[i] = neuprint.FormatValue(v)
		}
		_ = w.Write(record)
	}
	w.Flush()

	if err := m.writeClipboard(buf.String()); err != nil {
		return "copy failed: " + err.Error()
	}
	if to-from == 1 {
		return "copied 1 row"
	}
	return fmt.Sprintf("copied %d rows", to-from)
}

// Package tui is a terminal viewer for tabular neuPrint results.
package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/connectome-neuprint/neuprint-go/pkg/neuprint"
)

var ErrNothingToShow = errors.New("result has no columns to show")

// ShowTable opens a full-screen viewer for t and blocks until the user quits.
func ShowTable(title string, t *neuprint.Table) error {
	if t == nil || len(t.Columns()) == 0 {
		return ErrNothingToShow
	}

	_, err := tea.NewProgram(newTableModel(title, t), tea.WithAltScreen()).Run()
	return err
}

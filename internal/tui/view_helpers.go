package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, body, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(body) != "" {
		b.WriteString(body)
	} else {
		b.WriteString("-")
	}
	b.WriteString("\n\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return appStyle.Render(b.String())
}

// fitText cuts v to at most max cells, marking the cut with an ellipsis.
func fitText(v string, max int) string {
	if max <= 0 || lipgloss.Width(v) <= max {
		return v
	}
	r := []rune(v)
	if max <= 3 {
		return string(r[:min(max, len(r))])
	}
	for lipgloss.Width(string(r)) > max-3 {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

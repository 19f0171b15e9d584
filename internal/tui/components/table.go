// Package components holds reusable terminal widgets.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableModel renders an aligned table with styled headers. Cells may
// contain ANSI-styled text; widths are measured in terminal cells, not
// bytes.
type TableModel struct {
	Headers []string
	Rows    [][]string
	// Minimum column widths. If nil, widths are auto-calculated.
	MinWidths []int
}

// NewTable creates a table with the given column headers.
func NewTable(headers []string) TableModel {
	return TableModel{Headers: headers}
}

// SetRows replaces all table rows.
func (t *TableModel) SetRows(rows [][]string) {
	t.Rows = rows
}

// View renders the table with aligned columns and styled headers.
func (t TableModel) View() string {
	if len(t.Headers) == 0 {
		return ""
	}

	colCount := len(t.Headers)
	widths := make([]int, colCount)

	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < colCount && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := 0; i < colCount && i < len(t.MinWidths); i++ {
		if t.MinWidths[i] > widths[i] {
			widths[i] = t.MinWidths[i]
		}
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Dark: "#AF87FF", Light: "#7B5FBF"})

	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Dark: "#585858", Light: "#999999"})

	const gap = "  "

	var b strings.Builder

	// Header row.
	for i, h := range t.Headers {
		if i > 0 {
			b.WriteString(gap)
		}
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
	}
	b.WriteByte('\n')

	// Separator under the headers.
	for i, w := range widths {
		if i > 0 {
			b.WriteString(gap)
		}
		b.WriteString(dimStyle.Render(strings.Repeat("─", w)))
	}
	b.WriteByte('\n')

	// Data rows.
	for _, row := range t.Rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if i > 0 {
				b.WriteString(gap)
			}
			b.WriteString(pad(cell, widths[i]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// pad right-pads a cell to the given display width, ignoring ANSI escapes.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

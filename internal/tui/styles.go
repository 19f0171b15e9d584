package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors that work on both light and dark terminals.
// First value is for dark backgrounds, second for light.
var (
	colorPrimary  = lipgloss.AdaptiveColor{Dark: "#AF87FF", Light: "#7B5FBF"}
	colorGreen    = lipgloss.AdaptiveColor{Dark: "#5FD75F", Light: "#2E8B2E"}
	colorRed      = lipgloss.AdaptiveColor{Dark: "#FF5F5F", Light: "#CC3333"}
	colorYellow   = lipgloss.AdaptiveColor{Dark: "#FFD75F", Light: "#B8860B"}
	colorOrange   = lipgloss.AdaptiveColor{Dark: "#FFAF5F", Light: "#CC6600"}
	colorDim      = lipgloss.AdaptiveColor{Dark: "#585858", Light: "#999999"}
	colorFg       = lipgloss.AdaptiveColor{Dark: "#E0E0E0", Light: "#1A1A1A"}
	colorBorder   = lipgloss.AdaptiveColor{Dark: "#3A3A3A", Light: "#CCCCCC"}
	colorStatusBg = lipgloss.AdaptiveColor{Dark: "#262626", Light: "#E8E8E8"}
)

// ContentStyle is the main content area with padding.
var ContentStyle = lipgloss.NewStyle().
	Padding(1, 2)

// ErrorStyle is red text for failures.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(colorRed).
	Bold(true)

// WarningStyle is yellow text for warnings.
var WarningStyle = lipgloss.NewStyle().
	Foreground(colorYellow)

// DimStyle is de-emphasized text.
var DimStyle = lipgloss.NewStyle().
	Foreground(colorDim)

// AccentStyle is for highlighted accent text.
var AccentStyle = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Bold(true)

// StatusBarStyle is the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(colorFg).
	Background(colorStatusBg).
	Padding(0, 1).
	Bold(true)

// PanelStyle is the outer bordered panel wrapping the dashboard.
var PanelStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(colorBorder).
	Padding(1, 2)

// renderPanel wraps content in a bordered panel with a title in the top border.
func renderPanel(title, content string) string {
	titleStr := " " + AccentStyle.Render(title) + " "

	body := PanelStyle.Render(content)

	// Replace the top-left portion of the border with the title.
	lines := strings.Split(body, "\n")
	if len(lines) > 0 {
		topLine := lines[0]
		// Find position to insert title (after the corner + a few border chars).
		if len(topLine) > 4 {
			// Insert title after the rounded corner and two border chars.
			runes := []rune(topLine)
			// Build: corner + "─" + title + rest of border
			var b strings.Builder
			b.WriteRune(runes[0]) // corner char
			b.WriteString(titleStr)
			// Fill remaining border width.
			titleVisual := 2 + lipgloss.Width(title) // spaces + title text
			remaining := len(runes) - 1 - titleVisual
			if remaining > 0 {
				for i := 0; i < remaining; i++ {
					b.WriteRune('─')
				}
				// Restore the closing corner.
				b.WriteRune(runes[len(runes)-1])
				lines[0] = b.String()
			}
		}
		body = strings.Join(lines, "\n")
	}

	return body
}

// renderStatusBar renders a horizontal status bar with pipe-separated items.
func renderStatusBar(items ...string) string {
	sep := DimStyle.Render(" | ")
	return StatusBarStyle.Render(strings.Join(items, sep))
}

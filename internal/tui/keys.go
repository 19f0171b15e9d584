package tui

import "github.com/charmbracelet/bubbles/key"

// DashboardKeys handles the access point dashboard.
type DashboardKeys struct {
	Quit    key.Binding
	Refresh key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k DashboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k DashboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Refresh, k.Quit}}
}

// DefaultDashboardKeys returns the default dashboard keybindings.
var DefaultDashboardKeys = DashboardKeys{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rescan now"),
	),
}

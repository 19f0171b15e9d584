package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaco/wifitop/internal/history"
	"github.com/jaco/wifitop/internal/oui"
	"github.com/jaco/wifitop/internal/scan"
	"github.com/jaco/wifitop/internal/tui"
)

// runWatch starts the live dashboard. It owns the full wiring: scanner
// selection, OUI table load, and a fresh history tracker per run.
func runWatch() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	vendors, ouiErr := oui.Load(cfg.OUIFile, ouiOptions(cfg)...)
	notice := ""
	if ouiErr != nil {
		// Non-fatal: every lookup falls back to "Unknown Manufacturer".
		notice = ouiErr.Error()
	}

	tracker := history.NewTracker(cfg.HistoryDepth)
	model := tui.NewModel(scan.ForHost(), vendors, tracker, cfg.Interval(), notice)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}

	fmt.Println("wifitop stopped.")
	return nil
}

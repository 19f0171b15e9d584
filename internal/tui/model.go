package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaco/wifitop/internal/history"
	"github.com/jaco/wifitop/internal/oui"
	"github.com/jaco/wifitop/internal/scan"
	"github.com/jaco/wifitop/internal/tui/components"
)

// scanTickMsg fires when the next refresh cycle is due.
type scanTickMsg time.Time

// scanResultMsg carries one scan cycle's outcome.
type scanResultMsg struct {
	aps []scan.AccessPoint
	err error
}

// Model is the live access point dashboard. Each cycle scans, records
// every sighting into the history tracker, enriches with the manufacturer
// table, and redraws; a scan failure shows an empty cycle and the loop
// carries on.
type Model struct {
	scanner  scan.Scanner
	vendors  *oui.Table
	tracker  *history.Tracker
	interval time.Duration

	// notice is a startup diagnostic (OUI load failure and the like),
	// pinned to the status bar.
	notice string

	aps      []scan.AccessPoint
	lastScan time.Time
	lastErr  error
	scanning bool
	cycles   int

	spin  spinner.Model
	table components.TableModel
	keys  DashboardKeys

	width, height int
}

// NewModel creates the dashboard. The tracker is owned by the model;
// construct a fresh one per program run.
func NewModel(scanner scan.Scanner, vendors *oui.Table, tracker *history.Tracker, interval time.Duration, notice string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = AccentStyle

	return Model{
		scanner:  scanner,
		vendors:  vendors,
		tracker:  tracker,
		interval: interval,
		notice:   notice,
		scanning: true,
		spin:     s,
		table: components.NewTable([]string{
			"#", "SSID", "BSSID", "SIGNAL", "CHAN", "MANUFACTURER", "HISTORY",
		}),
		keys: DefaultDashboardKeys,
	}
}

// Init kicks off the first scan immediately; NewModel starts in the
// scanning state.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.scanCmd())
}

// Update drives the scan-sleep-repeat cycle.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			if m.scanning {
				return m, nil
			}
			m.scanning = true
			return m, tea.Batch(m.spin.Tick, m.scanCmd())
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case scanTickMsg:
		// A tick landing while a scan is still in flight is dropped;
		// the result handler schedules the next one.
		if m.scanning {
			return m, nil
		}
		m.scanning = true
		return m, tea.Batch(m.spin.Tick, m.scanCmd())

	case scanResultMsg:
		m.scanning = false
		m.cycles++
		m.lastScan = time.Now()
		m.lastErr = msg.err
		m.aps = msg.aps
		for _, ap := range m.aps {
			m.tracker.Record(ap.BSSID, ap.Signal)
		}
		m.table.SetRows(m.rows())
		return m, m.tickCmd()
	}

	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

// View renders the dashboard panel, status bar, and key help.
func (m Model) View() string {
	var body string
	switch {
	case len(m.aps) > 0:
		body = m.table.View()
	case m.scanning && m.cycles == 0:
		body = m.spin.View() + " Scanning for access points..."
	case m.lastErr != nil:
		body = ErrorStyle.Render("Scan failed: "+m.lastErr.Error()) + "\n" +
			DimStyle.Render("Retrying on the next cycle.")
	default:
		body = DimStyle.Render("No access points visible.")
	}

	if m.scanning && m.cycles > 0 {
		body += "\n" + m.spin.View() + DimStyle.Render(" rescanning")
	}

	panel := renderPanel("wifitop", body)
	bar := renderStatusBar(m.statusItems()...)
	help := DimStyle.Render("r: rescan now | q: quit")

	return ContentStyle.Render(panel + "\n" + bar + "\n" + help)
}

// rows builds one table row per access point, already sorted by the
// scanner (signal descending, stable ties).
func (m Model) rows() [][]string {
	rows := make([][]string, 0, len(m.aps))
	for i, ap := range m.aps {
		signal := BandFor(ap.Signal).Style().Render(strconv.Itoa(ap.Signal) + "%")
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			ap.SSID,
			ap.BSSID,
			signal,
			ap.Channel,
			m.vendors.Lookup(ap.BSSID),
			Sparkline(m.tracker.Samples(ap.BSSID), m.tracker.Capacity()),
		})
	}
	return rows
}

// statusItems assembles the status bar segments.
func (m Model) statusItems() []string {
	items := []string{
		fmt.Sprintf("source: %s", m.scanner.Source()),
		fmt.Sprintf("%d access points", len(m.aps)),
		fmt.Sprintf("every %s", m.interval),
	}
	if n := m.vendors.Len(); n > 0 {
		items = append(items, fmt.Sprintf("%d OUI entries", n))
	}
	if !m.lastScan.IsZero() {
		items = append(items, "updated "+m.lastScan.Format("15:04:05"))
	}
	if m.lastErr != nil {
		items = append(items, ErrorStyle.Render(m.lastErr.Error()))
	}
	if m.notice != "" {
		items = append(items, WarningStyle.Render(m.notice))
	}
	return items
}

// scanCmd runs one scan asynchronously. No timeout is applied beyond the
// utility's own: a hung scanner hangs the cycle, not the UI.
func (m Model) scanCmd() tea.Cmd {
	// Capture the scanner by value for the closure; the model is a value
	// receiver copy.
	scanner := m.scanner
	return func() tea.Msg {
		aps, err := scanner.List(context.Background())
		return scanResultMsg{aps: aps, err: err}
	}
}

// tickCmd schedules the next refresh cycle.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return scanTickMsg(t)
	})
}

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/jaco/wifitop/internal/oui"
	"github.com/jaco/wifitop/internal/scan"
	"github.com/jaco/wifitop/internal/tui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Scan once and print the sorted access point list",
	Long: `Run a single scan and print the visible access points sorted by signal
strength, colored by band when stdout is a terminal.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var (
		vendors   *oui.Table
		ouiLoaded bool
		aps       []scan.AccessPoint
	)

	// The OUI load and the scan are independent; overlap them.
	g := new(errgroup.Group)
	g.Go(func() error {
		var lerr error
		vendors, lerr = oui.Load(cfg.OUIFile, ouiOptions(cfg)...)
		if lerr != nil {
			// Non-fatal; lookups fall back to "Unknown Manufacturer".
			fmt.Fprintln(os.Stderr, lerr)
			return nil
		}
		ouiLoaded = true
		return nil
	})
	g.Go(func() error {
		var serr error
		aps, serr = scan.ForHost().List(context.Background())
		return serr
	})
	if err := g.Wait(); err != nil {
		return err
	}

	colorize := term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Print(renderList(aps, vendors, ouiLoaded, colorize))
	return nil
}

// renderList formats the one-shot listing. The entry-count line appears
// only when the database actually loaded; a failed load already reported
// itself on stderr.
func renderList(aps []scan.AccessPoint, vendors *oui.Table, loaded, colorize bool) string {
	var b strings.Builder
	if loaded {
		fmt.Fprintf(&b, "Loaded %d entries from OUI database.\n", vendors.Len())
	}
	b.WriteString("Available Wi-Fi Networks (sorted by signal):\n")
	for i, ap := range aps {
		line := fmt.Sprintf("%d. SSID: %s, Signal: %d%%, BSSID: %s, Channel: %s, Manufacturer: %s",
			i+1, ap.SSID, ap.Signal, ap.BSSID, ap.Channel, vendors.Lookup(ap.BSSID))
		if colorize {
			// The one-shot listing uses the three-band scheme.
			line = tui.BandFor(ap.Signal).Collapse().Style().Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

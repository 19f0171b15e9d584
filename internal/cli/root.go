// Package cli defines the wifitop command surface.
package cli

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/jaco/wifitop/internal/config"
	"github.com/jaco/wifitop/internal/oui"
)

var (
	cfgFile      string
	ouiFile      string
	intervalSec  int
	historyDepth int
	embeddedOUI  bool

	rootCmd = &cobra.Command{
		Use:   "wifitop",
		Short: "Live monitor for nearby Wi-Fi access points",
		Long: `wifitop watches the Wi-Fi neighborhood through the platform's network
utility (nmcli, airport, or netsh), enriches each access point with its
manufacturer from a Wireshark-style OUI database, and redraws a color-coded
table with per-access-point signal history every few seconds.

Run with no arguments for the live dashboard, or "wifitop list" for a
one-shot sorted listing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./wifitop.yaml)")
	rootCmd.PersistentFlags().StringVar(&ouiFile, "oui", "", `OUI database file (default "manuf")`)
	rootCmd.PersistentFlags().IntVar(&intervalSec, "interval", 0, "seconds between scans")
	rootCmd.PersistentFlags().IntVar(&historyDepth, "history", 0, "signal samples kept per access point")
	rootCmd.PersistentFlags().BoolVar(&embeddedOUI, "embedded-oui", false, "fall back to the built-in IEEE database for unknown prefixes")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves settings: explicit --config must load; otherwise
// ./wifitop.yaml is used when present and built-in defaults when not.
// Only a missing default file falls back to defaults; a present but
// unreadable or malformed one is an error, never silently ignored.
// Flags win over the file.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
	} else {
		cfg, err = config.Load(config.DefaultFile)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
			cfg = config.Default()
		}
	}

	if ouiFile != "" {
		cfg.OUIFile = ouiFile
	}
	if intervalSec > 0 {
		cfg.IntervalSeconds = intervalSec
	}
	if historyDepth > 0 {
		cfg.HistoryDepth = historyDepth
	}
	if embeddedOUI {
		cfg.EmbeddedOUI = true
	}
	return cfg, nil
}

// ouiOptions translates config into oui.Load options.
func ouiOptions(cfg *config.Config) []oui.Option {
	if cfg.EmbeddedOUI {
		return []oui.Option{oui.WithEmbeddedFallback()}
	}
	return nil
}

// Package config loads optional wifitop.yaml settings.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config filename tried when none is given.
const DefaultFile = "wifitop.yaml"

// Config holds the tunable settings. Every field has a default, so the
// tool runs with no config file at all.
type Config struct {
	// IntervalSeconds between refresh cycles.
	IntervalSeconds int `yaml:"interval_seconds"`
	// HistoryDepth is the number of signal samples kept per access point.
	HistoryDepth int `yaml:"history_depth"`
	// OUIFile is the path of the manuf-format manufacturer database.
	OUIFile string `yaml:"oui_file"`
	// EmbeddedOUI enables the compiled-in IEEE database as a fallback for
	// prefixes the file does not cover.
	EmbeddedOUI bool `yaml:"embedded_oui"`
}

// Default returns the built-in settings: 5 second refresh, 10 samples of
// history, OUI database "manuf" in the working directory.
func Default() *Config {
	return &Config{
		IntervalSeconds: 5,
		HistoryDepth:    10,
		OUIFile:         "manuf",
	}
}

// Load reads a YAML config file. Zero-valued fields fall back to their
// defaults, so a partial file only overrides what it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.IntervalSeconds <= 0 {
		cfg.IntervalSeconds = Default().IntervalSeconds
	}
	if cfg.HistoryDepth <= 0 {
		cfg.HistoryDepth = Default().HistoryDepth
	}
	if cfg.OUIFile == "" {
		cfg.OUIFile = Default().OUIFile
	}
	return cfg, nil
}

// Interval returns the refresh interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

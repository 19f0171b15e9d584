// Package oui maps hardware-address OUI prefixes to manufacturer names.
//
// The primary source is a Wireshark-style "manuf" flat file loaded once at
// startup. The endobit/oui compiled-in IEEE database can be enabled as a
// fallback for prefixes the file does not cover.
package oui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	ieee "github.com/endobit/oui"
)

// UnknownManufacturer is returned for any address whose OUI prefix is not
// present in the table.
const UnknownManufacturer = "Unknown Manufacturer"

// DefaultFile is the database filename looked up in the working directory
// when no path is configured.
const DefaultFile = "manuf"

// Table is an immutable OUI prefix -> manufacturer mapping. Build one with
// Load (or New for tests); it is read-only afterwards.
type Table struct {
	entries  map[string]string
	embedded bool
}

// Option configures a Table at load time.
type Option func(*Table)

// WithEmbeddedFallback enables the compiled-in IEEE OUI database for
// prefixes missing from the loaded file.
func WithEmbeddedFallback() Option {
	return func(t *Table) { t.embedded = true }
}

// New builds a Table directly from a prefix -> manufacturer map. Keys must
// be uppercase colon-separated 3-octet prefixes ("AA:BB:CC").
func New(entries map[string]string, opts ...Option) *Table {
	t := &Table{entries: entries}
	if t.entries == nil {
		t.entries = map[string]string{}
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Load reads a manuf-format database file.
//
// Each non-comment, non-blank line holds whitespace-separated fields:
// prefix, short name (ignored), and the manufacturer name in the remaining
// fields. Lines with fewer than three fields are skipped. On open or read
// failure the returned Table is empty and usable; the error tells the
// caller what went wrong so it can log and carry on.
func Load(path string, opts ...Option) (*Table, error) {
	t := New(nil, opts...)

	f, err := os.Open(path)
	if err != nil {
		return t, fmt.Errorf("oui: open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		prefix := strings.ToUpper(fields[0])
		t.entries[prefix] = strings.Join(fields[2:], " ")
	}
	if err := scanner.Err(); err != nil {
		return t, fmt.Errorf("oui: read %s: %w", path, err)
	}
	return t, nil
}

// Len returns the number of loaded entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the manufacturer for a hardware address. The first three
// colon-separated octet groups are uppercased and matched exactly, so
// lowercase scanned addresses resolve against the uppercase database.
func (t *Table) Lookup(hw string) string {
	groups := strings.Split(hw, ":")
	if len(groups) < 3 {
		return UnknownManufacturer
	}
	prefix := strings.ToUpper(strings.Join(groups[:3], ":"))
	if name, ok := t.entries[prefix]; ok {
		return name
	}
	if t.embedded {
		if vendor := ieee.Vendor(hw); vendor != "" {
			return vendor
		}
	}
	return UnknownManufacturer
}

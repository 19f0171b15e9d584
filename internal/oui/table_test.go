package oui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManuf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manuf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadParsesManufFormat(t *testing.T) {
	path := writeManuf(t, `# Wireshark manuf file
# comment line

AA:BB:CC	TestC	Test Corp
DD:EE:FF	Acme	Acme Wireless Division
11:22:33	Short
`)

	table, err := Load(path)
	require.NoError(t, err)

	// The two-field line is skipped.
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, "Test Corp", table.Lookup("AA:BB:CC:00:00:00"))
	assert.Equal(t, "Acme Wireless Division", table.Lookup("DD:EE:FF:12:34:56"))
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	table := New(map[string]string{"AA:BB:CC": "Test Corp"})

	assert.Equal(t, "Test Corp", table.Lookup("aa:bb:cc:11:22:33"))
	assert.Equal(t, "Test Corp", table.Lookup("Aa:bB:Cc:11:22:33"))
	assert.Equal(t, "Test Corp", table.Lookup("AA:BB:CC:11:22:33"))
}

func TestLookupUnknownPrefix(t *testing.T) {
	table := New(map[string]string{"AA:BB:CC": "Test Corp"})

	assert.Equal(t, UnknownManufacturer, table.Lookup("00:11:22:33:44:55"))
}

func TestLookupMalformedAddress(t *testing.T) {
	table := New(map[string]string{"AA:BB:CC": "Test Corp"})

	assert.Equal(t, UnknownManufacturer, table.Lookup("not-a-mac"))
	assert.Equal(t, UnknownManufacturer, table.Lookup(""))
	assert.Equal(t, UnknownManufacturer, table.Lookup("AA:BB"))
}

func TestLoadMissingFileYieldsEmptyTable(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
	require.NotNil(t, table)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, UnknownManufacturer, table.Lookup("AA:BB:CC:11:22:33"))
}

func TestLoadLowercasePrefixNormalized(t *testing.T) {
	path := writeManuf(t, "aa:bb:cc\tTestC\tTest Corp\n")

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Corp", table.Lookup("AA:BB:CC:01:02:03"))
}

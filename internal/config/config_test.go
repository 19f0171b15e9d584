package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 5, cfg.IntervalSeconds)
	assert.Equal(t, 10, cfg.HistoryDepth)
	assert.Equal(t, "manuf", cfg.OUIFile)
	assert.False(t, cfg.EmbeddedOUI)
	assert.Equal(t, 5*time.Second, cfg.Interval())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wifitop.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
interval_seconds: 2
history_depth: 20
oui_file: /usr/share/wireshark/manuf
embedded_oui: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.IntervalSeconds)
	assert.Equal(t, 20, cfg.HistoryDepth)
	assert.Equal(t, "/usr/share/wireshark/manuf", cfg.OUIFile)
	assert.True(t, cfg.EmbeddedOUI)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wifitop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history_depth: 30\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.HistoryDepth)
	assert.Equal(t, 5, cfg.IntervalSeconds)
	assert.Equal(t, "manuf", cfg.OUIFile)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wifitop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interval_seconds: [oops\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

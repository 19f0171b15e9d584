package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaco/wifitop/internal/oui"
	"github.com/jaco/wifitop/internal/scan"
)

func TestRenderListShowsCountOnlyWhenLoaded(t *testing.T) {
	vendors := oui.New(map[string]string{"AA:BB:CC": "Test Corp"})

	loaded := renderList(nil, vendors, true, false)
	assert.True(t, strings.HasPrefix(loaded, "Loaded 1 entries from OUI database.\n"))

	failed := renderList(nil, vendors, false, false)
	assert.NotContains(t, failed, "Loaded")
	assert.True(t, strings.HasPrefix(failed, "Available Wi-Fi Networks"))
}

func TestRenderListLinesInScanOrder(t *testing.T) {
	vendors := oui.New(map[string]string{"AA:BB:CC": "Test Corp"})
	aps := []scan.AccessPoint{
		{SSID: "HomeNet", BSSID: "aa:bb:cc:11:22:33", Signal: 82, Channel: "11"},
		{SSID: "Guest", BSSID: "11:22:33:44:55:66", Signal: 40, Channel: "6"},
	}

	out := renderList(aps, vendors, true, false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, "1. SSID: HomeNet, Signal: 82%, BSSID: aa:bb:cc:11:22:33, Channel: 11, Manufacturer: Test Corp", lines[2])
	assert.Equal(t, "2. SSID: Guest, Signal: 40%, BSSID: 11:22:33:44:55:66, Channel: 6, Manufacturer: "+oui.UnknownManufacturer, lines[3])
}

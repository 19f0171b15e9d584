package scan

import (
	"context"
	"strings"
)

// netshScanner lists access points through netsh on Windows.
type netshScanner struct{}

func (netshScanner) List(ctx context.Context) ([]AccessPoint, error) {
	// mode=bssid is required for per-BSSID signal and channel blocks;
	// without it netsh prints SSIDs only.
	out, err := runCommand(ctx, "netsh", "wlan", "show", "network", "mode=bssid")
	if err != nil {
		return nil, err
	}
	return parseNetsh(out), nil
}

func (netshScanner) Source() string {
	return "netsh"
}

// parseNetsh parses netsh's key : value block output. Fields accumulate
// line by line and a Channel line completes one record:
//
//	SSID 1 : HomeNet
//	    Network type            : Infrastructure
//	    BSSID 1                 : aa:bb:cc:dd:ee:ff
//	         Signal             : 75%
//	         Radio type         : 802.11n
//	         Channel            : 11
//
// Only the first colon separates key from value, so BSSID values keep
// their own colons. The SSID carries over across multiple BSSID blocks
// under the same network.
func parseNetsh(output string) []AccessPoint {
	var aps []AccessPoint
	var ssid, bssid string
	signal := 0

	for _, line := range strings.Split(output, "\n") {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch {
		case strings.HasPrefix(key, "BSSID"):
			bssid = value
		case strings.HasPrefix(key, "SSID"):
			ssid = value
		case key == "Signal":
			signal = parseSignal(value)
		case key == "Channel":
			aps = append(aps, AccessPoint{
				SSID:    ssid,
				BSSID:   bssid,
				Signal:  signal,
				Channel: value,
			})
			bssid = ""
			signal = 0
		}
	}
	SortBySignal(aps)
	return aps
}

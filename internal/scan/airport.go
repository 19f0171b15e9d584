package scan

import (
	"context"
	"strings"
)

// airportPath is the fixed location of the private wireless-scan utility
// on macOS.
const airportPath = "/System/Library/PrivateFrameworks/Apple80211.framework/Versions/Current/Resources/airport"

// airportScanner lists access points through the airport utility on macOS.
type airportScanner struct{}

func (airportScanner) List(ctx context.Context) ([]AccessPoint, error) {
	out, err := runCommand(ctx, airportPath, "-s")
	if err != nil {
		return nil, err
	}
	return parseAirport(out), nil
}

func (airportScanner) Source() string {
	return "airport"
}

// parseAirport parses `airport -s` output. The layout matches nmcli's shape
// (SSID, BSSID, signal, optional channel), so the same BSSID-anchored match
// applies. The signal column is a raw integer and gets the same default-0
// treatment on malformed values.
//
//	            SSID BSSID             RSSI CHANNEL HT CC SECURITY
//	         HomeNet aa:bb:cc:dd:ee:ff  82  11      Y  -- WPA2(PSK)
func parseAirport(output string) []AccessPoint {
	var aps []AccessPoint
	for i, line := range strings.Split(output, "\n") {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		m := nmcliRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		channel := m[4]
		if channel == "" {
			channel = UnknownChannel
		}
		aps = append(aps, AccessPoint{
			SSID:    strings.TrimSpace(m[1]),
			BSSID:   m[2],
			Signal:  parseSignal(m[3]),
			Channel: channel,
		})
	}
	SortBySignal(aps)
	return aps
}

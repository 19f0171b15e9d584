package scan

import "sort"

// AccessPoint is one radio visible in a scan cycle.
type AccessPoint struct {
	// SSID is the display name. May be empty, and several access points
	// can share one SSID.
	SSID string
	// BSSID is the hardware address (XX:XX:XX:XX:XX:XX) and uniquely
	// identifies the radio for history tracking.
	BSSID string
	// Signal is the strength percentage, 0-100. Malformed scanner output
	// parses to 0.
	Signal int
	// Channel is an opaque channel label, "N/A" when the platform utility
	// does not report one.
	Channel string
}

// UnknownChannel is the Channel value when the utility reports none.
const UnknownChannel = "N/A"

// SortBySignal orders access points by signal percentage, strongest first.
// Equal signals keep their relative scan order.
func SortBySignal(aps []AccessPoint) {
	sort.SliceStable(aps, func(i, j int) bool {
		return aps[i].Signal > aps[j].Signal
	})
}

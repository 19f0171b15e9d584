package scan

import (
	"context"
	"regexp"
	"strings"
)

// nmcli columnar format (from `nmcli -f SSID,BSSID,SIGNAL,CHAN dev wifi`):
//
//	SSID          BSSID              SIGNAL  CHAN
//	HomeNet       AA:BB:CC:DD:EE:FF  82      11
//	Guest Lounge  11:22:33:44:55:66  54      36
//	--            DE:AD:BE:EF:00:01  17      1
//
// The BSSID anchors the match so SSIDs containing spaces stay intact.
// The header row carries no hardware address and falls through.
var nmcliRe = regexp.MustCompile(
	`^(?:(.*?)\s+)?` + // SSID (may be empty)
		`([0-9A-Fa-f]{2}(?::[0-9A-Fa-f]{2}){5})\s+` + // BSSID
		`(\S+)` + // signal
		`(?:\s+(\S+))?`, // channel (optional)
)

// nmcliScanner lists access points through NetworkManager on Linux.
type nmcliScanner struct{}

func (nmcliScanner) List(ctx context.Context) ([]AccessPoint, error) {
	out, err := runCommand(ctx, "nmcli", "-f", "SSID,BSSID,SIGNAL,CHAN", "dev", "wifi")
	if err != nil {
		return nil, err
	}
	return parseNmcli(out), nil
}

func (nmcliScanner) Source() string {
	return "nmcli"
}

// parseNmcli parses nmcli's columnar output into sorted access points.
func parseNmcli(output string) []AccessPoint {
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

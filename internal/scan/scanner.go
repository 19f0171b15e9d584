// Package scan discovers nearby Wi-Fi access points by invoking the host
// platform's network-listing utility and parsing its text output.
package scan

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// Scanner produces the list of currently visible access points. Three
// implementations exist, one per supported platform, each shelling out to
// that platform's fixed utility.
type Scanner interface {
	// List runs one scan. The returned slice is sorted by signal
	// percentage descending with stable ties. A command failure returns
	// an error and no access points; the caller treats that as an empty
	// cycle and carries on.
	List(ctx context.Context) ([]AccessPoint, error)

	// Source names the underlying utility, for display and logs.
	Source() string
}

// ForHost selects the Scanner for the current operating system. Unsupported
// systems get a stub whose List always fails with a diagnostic error, so the
// caller's empty-cycle handling applies uniformly.
func ForHost() Scanner {
	switch runtime.GOOS {
	case "linux":
		return nmcliScanner{}
	case "darwin":
		return airportScanner{}
	case "windows":
		return netshScanner{}
	default:
		return unsupportedScanner{goos: runtime.GOOS}
	}
}

// runCommand executes the platform utility and returns its stdout. A
// non-zero exit or spawn failure is wrapped with the command name so the
// log line identifies which utility broke.
func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("scan: %s: %w", name, err)
	}
	return string(out), nil
}

// parseSignal converts a signal field to an integer percentage. A trailing
// percent sign is stripped first. Malformed values default to 0 on every
// platform rather than dropping the record.
func parseSignal(s string) int {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

type unsupportedScanner struct {
	goos string
}

func (s unsupportedScanner) List(ctx context.Context) ([]AccessPoint, error) {
	return nil, fmt.Errorf("scan: wifi scanning is not supported on %s", s.goos)
}

func (s unsupportedScanner) Source() string {
	return "unsupported"
}

// Package uptime provides the system uptime probe and its duration formatter.
package uptime

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nraihan/sysstatus/internal/probe"
)

// DefaultPath is the kernel-exposed uptime file. The first whitespace-separated
// field is seconds since boot.
const DefaultPath = "/proc/uptime"

// Read returns the formatted uptime from the given file.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &probe.SystemInfoError{
				Reason: fmt.Sprintf("cannot read system uptime: %s not found", path),
			}
		}
		return "", &probe.SystemInfoError{Reason: "cannot parse uptime", Err: err}
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return "", &probe.SystemInfoError{Reason: "cannot parse uptime: empty file"}
	}

	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return "", &probe.SystemInfoError{Reason: "cannot parse uptime", Err: err}
	}

	return FormatDuration(seconds), nil
}

// FormatDuration converts seconds since boot into a compact elapsed-time
// string ("2d 5h 30m 15s"). The fractional part is truncated, never rounded.
// Zero-valued units are omitted except seconds, which is always emitted when
// it is non-zero or when nothing else was.
func FormatDuration(seconds float64) string {
	total := int64(seconds)

	days := total / 86400
	total %= 86400
	hours := total / 3600
	total %= 3600
	minutes := total / 60
	secs := total % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if secs > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", secs))
	}

	return strings.Join(parts, " ")
}

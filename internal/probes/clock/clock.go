// Package clock provides the current date/time probe. It is the only probe
// that cannot fail.
package clock

import "time"

const layout = "2006-01-02 15:04:05"

// Now returns the current local time formatted for display.
func Now() string {
	return Format(time.Now())
}

// Format renders t in the fixed display layout.
func Format(t time.Time) string {
	return t.Format(layout)
}

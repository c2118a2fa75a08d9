// Package probe defines the shared vocabulary for system information probes:
// the fixed set of display labels and the error types probes raise.
package probe

// Label identifies a single entry in the information snapshot.
type Label string

// The fixed label set. No probe contributes more than one entry.
const (
	LabelDateTime Label = "Date/Time"
	LabelWeather  Label = "Weather"
	LabelIP       Label = "IP Address"
	LabelRouter   Label = "Router IP"
	LabelUptime   Label = "Uptime"
)

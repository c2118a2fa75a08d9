// Package snapshot runs all information probes and merges their results into
// one ordered, failure-isolated snapshot.
package snapshot

import (
	"context"
	"log/slog"

	"github.com/nraihan/sysstatus/internal/config"
	"github.com/nraihan/sysstatus/internal/probe"
	"github.com/nraihan/sysstatus/internal/probes/clock"
	"github.com/nraihan/sysstatus/internal/probes/gateway"
	"github.com/nraihan/sysstatus/internal/probes/localip"
	"github.com/nraihan/sysstatus/internal/probes/uptime"
	"github.com/nraihan/sysstatus/internal/probes/weather"
)

// notAvailable is the display value for a soft no-result outcome, distinct
// from an "Error: ..." value.
const notAvailable = "Not available"

// Entry is one labeled, display-ready value.
type Entry struct {
	Label probe.Label
	Value string
}

// Snapshot is the ordered result of one collection run. Order is a display
// contract: Date/Time, [Weather if requested], IP Address, Router IP, Uptime.
type Snapshot []Entry

// Get returns the value for a label.
func (s Snapshot) Get(label probe.Label) (string, bool) {
	for _, e := range s {
		if e.Label == label {
			return e.Value, true
		}
	}
	return "", false
}

// WithWeather returns a copy of s with the Weather entry set to value,
// inserted at its contractual position (immediately after Date/Time) when
// absent. The CLI city-override flow uses this to merge a separately fetched
// weather value into a weatherless snapshot.
func (s Snapshot) WithWeather(value string) Snapshot {
	out := make(Snapshot, 0, len(s)+1)
	replaced := false
	for _, e := range s {
		if e.Label == probe.LabelWeather {
			out = append(out, Entry{probe.LabelWeather, value})
			replaced = true
			continue
		}
		out = append(out, e)
		if e.Label == probe.LabelDateTime && !replaced {
			out = append(out, Entry{probe.LabelWeather, value})
			replaced = true
		}
	}
	if !replaced {
		out = append(Snapshot{{probe.LabelWeather, value}}, out...)
	}
	return out
}

// Collector runs the probes. Probe functions are fields so tests can
// substitute failing or canned implementations.
type Collector struct {
	cfg *config.Config
	log *slog.Logger

	clock     func() string
	weatherFn func(ctx context.Context, city string) (string, error)
	localIP   func() (string, error)
	gatewayIP func(ctx context.Context) (string, bool, error)
	uptimeFn  func() (string, error)
}

// New builds a Collector wired to the real probes.
func New(cfg *config.Config, log *slog.Logger) *Collector {
	return &Collector{
		cfg:       cfg,
		log:       log,
		clock:     clock.Now,
		weatherFn: weather.New(cfg, log).Current,
		localIP:   localip.Resolve,
		gatewayIP: gateway.Lookup,
		uptimeFn:  func() (string, error) { return uptime.Read(uptime.DefaultPath) },
	}
}

// Collect runs every probe and returns the complete ordered snapshot. Each
// probe's failure is caught here and converted to an inline "Error: ..."
// value; Collect itself never fails and every configured label is always
// present.
func (c *Collector) Collect(ctx context.Context, includeWeather bool) Snapshot {
	snap := Snapshot{{probe.LabelDateTime, c.clock()}}

	if includeWeather {
		value, err := c.weatherFn(ctx, "")
		if err != nil {
			c.log.Error("failed to get weather", "error", err)
			value = errorValue(err)
		}
		snap = append(snap, Entry{probe.LabelWeather, value})
	}

	ip, err := c.localIP()
	if err != nil {
		c.log.Error("failed to get IP address", "error", err)
		ip = errorValue(err)
	}
	snap = append(snap, Entry{probe.LabelIP, ip})

	router := notAvailable
	switch gw, found, err := c.gatewayIP(ctx); {
	case err != nil:
		c.log.Warn("failed to get router IP", "error", err)
	case found:
		router = gw
	}
	snap = append(snap, Entry{probe.LabelRouter, router})

	up, err := c.uptimeFn()
	if err != nil {
		c.log.Error("failed to get uptime", "error", err)
		up = errorValue(err)
	}
	snap = append(snap, Entry{probe.LabelUptime, up})

	return snap
}

// Weather returns just the formatted weather string for the given city. The
// CLI uses it for the --city override flow.
func (c *Collector) Weather(ctx context.Context, city string) (string, error) {
	return c.weatherFn(ctx, city)
}

func errorValue(err error) string {
	return "Error: " + err.Error()
}

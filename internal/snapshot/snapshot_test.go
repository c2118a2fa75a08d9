package snapshot

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/nraihan/sysstatus/internal/config"
	"github.com/nraihan/sysstatus/internal/probe"
)

func testCollector() *Collector {
	return &Collector{
		cfg:       &config.Config{DefaultCity: "Dhaka"},
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:     func() string { return "2024-03-07 09:05:02" },
		weatherFn: func(ctx context.Context, city string) (string, error) { return "Dhaka: 25.5°C, clear sky", nil },
		localIP:   func() (string, error) { return "192.168.1.42", nil },
		gatewayIP: func(ctx context.Context) (string, bool, error) { return "192.168.1.1", true, nil },
		uptimeFn:  func() (string, error) { return "1d 2h 3m 4s", nil },
	}
}

func labels(s Snapshot) []probe.Label {
	out := make([]probe.Label, len(s))
	for i, e := range s {
		out[i] = e.Label
	}
	return out
}

func TestCollectOrdering(t *testing.T) {
	c := testCollector()
	snap := c.Collect(context.Background(), true)

	want := []probe.Label{
		probe.LabelDateTime,
		probe.LabelWeather,
		probe.LabelIP,
		probe.LabelRouter,
		probe.LabelUptime,
	}
	if got := labels(snap); !reflect.DeepEqual(got, want) {
		t.Errorf("label order = %v, want %v", got, want)
	}
}

func TestCollectWithoutWeather(t *testing.T) {
	c := testCollector()
	snap := c.Collect(context.Background(), false)

	want := []probe.Label{
		probe.LabelDateTime,
		probe.LabelIP,
		probe.LabelRouter,
		probe.LabelUptime,
	}
	if got := labels(snap); !reflect.DeepEqual(got, want) {
		t.Errorf("label order = %v, want %v", got, want)
	}
	if _, ok := snap.Get(probe.LabelWeather); ok {
		t.Error("weather entry present despite not being requested")
	}
}

func TestCollectFailureIsolation(t *testing.T) {
	c := testCollector()
	c.uptimeFn = func() (string, error) {
		return "", &probe.SystemInfoError{Reason: "cannot parse uptime"}
	}

	snap := c.Collect(context.Background(), true)
	if len(snap) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(snap))
	}

	up, _ := snap.Get(probe.LabelUptime)
	if up != "Error: cannot parse uptime" {
		t.Errorf("uptime value = %q, want error value", up)
	}

	// All other entries are untouched by the failure.
	for _, e := range snap {
		if e.Label == probe.LabelUptime {
			continue
		}
		if len(e.Value) >= 6 && e.Value[:6] == "Error:" {
			t.Errorf("entry %s unexpectedly failed: %q", e.Label, e.Value)
		}
	}
}

func TestCollectWeatherFailure(t *testing.T) {
	c := testCollector()
	c.weatherFn = func(ctx context.Context, city string) (string, error) {
		return "", &probe.WeatherAPIError{Reason: "weather API key not configured"}
	}

	snap := c.Collect(context.Background(), true)
	got, ok := snap.Get(probe.LabelWeather)
	if !ok {
		t.Fatal("weather entry missing despite being requested")
	}
	if got != "Error: weather API key not configured" {
		t.Errorf("weather value = %q", got)
	}
}

func TestCollectGatewayOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(ctx context.Context) (string, bool, error)
		expected string
	}{
		{
			name:     "found",
			fn:       func(ctx context.Context) (string, bool, error) { return "10.0.0.1", true, nil },
			expected: "10.0.0.1",
		},
		{
			name:     "no default route",
			fn:       func(ctx context.Context) (string, bool, error) { return "", false, nil },
			expected: "Not available",
		},
		{
			name:     "command failure",
			fn:       func(ctx context.Context) (string, bool, error) { return "", false, errors.New("exec: timed out") },
			expected: "Not available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCollector()
			c.gatewayIP = tt.fn

			snap := c.Collect(context.Background(), false)
			got, _ := snap.Get(probe.LabelRouter)
			if got != tt.expected {
				t.Errorf("router value = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCollectOrderingStable(t *testing.T) {
	c := testCollector()
	first := c.Collect(context.Background(), true)
	second := c.Collect(context.Background(), true)

	if !reflect.DeepEqual(labels(first), labels(second)) {
		t.Errorf("ordering differs between calls: %v vs %v", labels(first), labels(second))
	}
}

func TestWithWeatherMatchesCombinedFlow(t *testing.T) {
	c := testCollector()

	combined := c.Collect(context.Background(), true)

	// The CLI override flow: collect without weather, fetch separately, merge.
	value, err := c.Weather(context.Background(), "Dhaka")
	if err != nil {
		t.Fatalf("Weather returned error: %v", err)
	}
	merged := c.Collect(context.Background(), false).WithWeather(value)

	if !reflect.DeepEqual(combined, merged) {
		t.Errorf("merged flow differs from combined flow:\n%v\n%v", combined, merged)
	}
}

func TestWithWeatherReplacesExisting(t *testing.T) {
	c := testCollector()
	snap := c.Collect(context.Background(), true).WithWeather("TestCity: 10°C, mist")

	if len(snap) != 5 {
		t.Fatalf("expected 5 entries after replace, got %d", len(snap))
	}
	got, _ := snap.Get(probe.LabelWeather)
	if got != "TestCity: 10°C, mist" {
		t.Errorf("weather value = %q", got)
	}
	if snap[1].Label != probe.LabelWeather {
		t.Errorf("weather at position %v, want 1", labels(snap))
	}
}

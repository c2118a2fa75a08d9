// Package weather provides the weather API probe. It talks to an
// OpenWeatherMap-compatible endpoint configured via a URL template.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/nraihan/sysstatus/internal/config"
	"github.com/nraihan/sysstatus/internal/probe"
)

// Client fetches and formats current weather for a city.
type Client struct {
	cfg  *config.Config
	log  *slog.Logger
	http *retryablehttp.Client
}

// New builds a Client bound to the given configuration. Transient transport
// failures and 5xx responses are retried a few times before the probe fails.
func New(cfg *config.Config, log *slog.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.Logger = nil

	return &Client{cfg: cfg, log: log, http: rc}
}

// statusCode tolerates the upstream API's habit of sending the embedded
// status as a number on success and a quoted string on errors.
type statusCode int

func (c *statusCode) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("status code %q is not numeric", s)
	}
	*c = statusCode(n)
	return nil
}

type apiResponse struct {
	Cod     statusCode `json:"cod"`
	Message string     `json:"message"`
	Main    struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Current returns "<city>: <temp>°C, <description>" for the given city, or
// the configured default city when city is empty. A missing API key fails
// before any network call is attempted.
func (c *Client) Current(ctx context.Context, city string) (string, error) {
	if city == "" {
		city = c.cfg.DefaultCity
	}

	apiKey := c.cfg.WeatherAPIKey
	if apiKey == "" {
		return "", &probe.WeatherAPIError{Reason: "weather API key not configured"}
	}

	url := strings.NewReplacer("{city}", city, "{api_key}", apiKey).
		Replace(c.cfg.WeatherURLTemplate)
	c.log.Debug("fetching weather", "city", city)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &probe.WeatherAPIError{Reason: "failed to fetch weather data", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &probe.WeatherAPIError{Reason: "failed to fetch weather data", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &probe.WeatherAPIError{
			Reason: "failed to fetch weather data",
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", &probe.WeatherAPIError{Reason: "failed to parse weather data", Err: err}
	}

	// The body carries its own status, distinct from the HTTP status.
	if payload.Cod != http.StatusOK {
		msg := payload.Message
		if msg == "" {
			msg = "unknown API error"
		}
		return "", &probe.WeatherAPIError{Reason: "weather API error: " + msg}
	}

	if payload.Main.Temp == nil || len(payload.Weather) == 0 || payload.Weather[0].Description == "" {
		return "", &probe.WeatherAPIError{Reason: "invalid weather data format"}
	}

	temp := strconv.FormatFloat(*payload.Main.Temp, 'f', -1, 64)
	return fmt.Sprintf("%s: %s°C, %s", city, temp, payload.Weather[0].Description), nil
}

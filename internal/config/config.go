// Package config loads tool configuration from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultCity        = "Dhaka"
	defaultTimeoutSecs = 10
	defaultWeatherURL  = "http://api.openweathermap.org/data/2.5/weather?q={city}&appid={api_key}&units=metric"
)

// Config holds the read-only settings consumed by the collector and the
// weather client. It is constructed once at startup and never mutated.
type Config struct {
	// WeatherAPIKey may be empty; the weather probe treats absence as a
	// terminal failure for that probe only.
	WeatherAPIKey string

	// DefaultCity is used when no city override is given.
	DefaultCity string

	// Timeout bounds the weather HTTP request.
	Timeout time.Duration

	// WeatherURLTemplate contains {city} and {api_key} substitution points.
	WeatherURLTemplate string
}

// Load builds a Config from the process environment. If envFile is non-empty
// it is loaded first; otherwise a .env file is searched for in the current
// directory and its parents. A malformed REQUEST_TIMEOUT is a startup error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else if path := findEnvFile(); path != "" {
		// Best effort: a discovered .env that fails to parse is ignored,
		// matching the explicit-path-only error contract.
		_ = godotenv.Load(path)
	}

	timeoutSecs := defaultTimeoutSecs
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", v, err)
		}
		timeoutSecs = n
	}

	return &Config{
		WeatherAPIKey:      os.Getenv("WEATHER_API_KEY"),
		DefaultCity:        getenvDefault("DEFAULT_CITY", defaultCity),
		Timeout:            time.Duration(timeoutSecs) * time.Second,
		WeatherURLTemplate: getenvDefault("WEATHER_API_URL", defaultWeatherURL),
	}, nil
}

// findEnvFile walks from the current directory to the filesystem root looking
// for a .env file.
func findEnvFile() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

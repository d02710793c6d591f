// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables. Every value has a
// default; the server is fully self-contained and needs no external services.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// SeedData controls whether the store starts with the sample trip and
	// bucket list. The reference destinations are always loaded.
	// Defaults to true.
	SeedData bool

	// SearchCacheTTL is how long mock search results are reused for the
	// same query before being regenerated. Defaults to 5m.
	SearchCacheTTL time.Duration

	// CheckoutDelay is the simulated payment processing time between the
	// user pressing pay and the booking confirming. Defaults to 2s.
	CheckoutDelay time.Duration

	// MaxBodyBytes caps incoming request body sizes. Defaults to 1 MiB,
	// generous for assistant action payloads.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error when a variable is set to an unparsable value.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	var err error
	if cfg.SeedData, err = getBool("SEED_DATA", true); err != nil {
		return Config{}, err
	}
	if cfg.SearchCacheTTL, err = getDuration("SEARCH_CACHE_TTL", 5*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.CheckoutDelay, err = getDuration("CHECKOUT_PROCESSING_DELAY", 2*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.MaxBodyBytes, err = getInt64("MAX_BODY_BYTES", 1<<20); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: expected a boolean, got %q", key, v)
	}
	return b, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: expected a duration like \"5m\", got %q", key, v)
	}
	return d, nil
}

func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: expected an integer, got %q", key, v)
	}
	return n, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

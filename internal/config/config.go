// Package config loads service settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Core engine timing.
	SimulationInterval time.Duration
	NotificationTTL    time.Duration
	StartupDelay       time.Duration
	NetworkLatency     time.Duration

	// RandomSeed pins the simulated randomness; 0 seeds from the clock.
	RandomSeed int64

	// Regional center for synthetic report coordinates.
	RegionLat float64
	RegionLon float64

	// DBPath locates the SQLite preference store.
	DBPath string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:  envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "json"),
		DBPath:    envOrDefault("DB_PATH", "data/oceanguard.db"),
	}

	var err error
	if cfg.ShutdownTimeout, err = durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.SimulationInterval, err = durationEnv("SIMULATION_INTERVAL", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.NotificationTTL, err = durationEnv("NOTIFICATION_TTL", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.StartupDelay, err = durationEnv("STARTUP_DELAY", 1500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.NetworkLatency, err = durationEnv("NETWORK_LATENCY", 1500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.RandomSeed, err = int64Env("RANDOM_SEED", 0); err != nil {
		return nil, err
	}
	if cfg.RegionLat, err = floatEnv("REGION_LAT", 13.0827); err != nil {
		return nil, err
	}
	if cfg.RegionLon, err = floatEnv("REGION_LON", 80.2707); err != nil {
		return nil, err
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}
	if cfg.DBPath == "" {
		return nil, errors.New("DB_PATH is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return d, nil
}

func int64Env(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return f, nil
}

// Package config loads process configuration from environment variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all process configuration.
type Config struct {
	Threads ThreadsConfig
	Logging LogConfig
	Metrics MetricsConfig
	Stress  StressConfig
}

// ThreadsConfig holds thread-spawning configuration.
type ThreadsConfig struct {
	// Limit caps concurrently live threads; 0 means unlimited.
	Limit int64 `envconfig:"THREAD_LIMIT" default:"8192"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// MetricsConfig holds metrics exposition configuration.
type MetricsConfig struct {
	// Addr is the listen address for the /metrics endpoint; empty disables
	// exposition.
	Addr string `envconfig:"METRICS_ADDR" default:""`
}

// StressConfig holds stress-driver configuration.
type StressConfig struct {
	Workers int `envconfig:"STRESS_WORKERS" default:"100"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Threads: ThreadsConfig{
			Limit: 8192,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Metrics: MetricsConfig{
			Addr: "",
		},
		Stress: StressConfig{
			Workers: 100,
		},
	}
}

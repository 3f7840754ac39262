// Package config loads the dashboard configuration from the data
// directory's config.json. A missing file yields defaults; the data
// directory itself can be overridden with SHIPPY_DATA_DIR.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds the runtime settings for the dashboard.
type Config struct {
	// DebugMode enables categorized file logging under <data-dir>/logs.
	DebugMode bool `json:"debug_mode"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level"`

	// Theme selects the color scheme: light, dark or auto.
	Theme string `json:"theme"`

	// ProcessingSeconds is how long the simulated payment gateway holds
	// a withdrawal before failing it.
	ProcessingSeconds int `json:"processing_seconds"`

	// FailureNoticeSeconds is how long the failure screen stays up
	// before the withdrawal wizard resets and closes.
	FailureNoticeSeconds int `json:"failure_notice_seconds"`

	dataDir string
}

// Default returns the configuration used when no config.json exists.
func Default(dataDir string) *Config {
	return &Config{
		LogLevel:             "info",
		Theme:                "auto",
		ProcessingSeconds:    10,
		FailureNoticeSeconds: 5,
		dataDir:              dataDir,
	}
}

// DefaultDataDir resolves the data directory: SHIPPY_DATA_DIR when
// set, otherwise ~/.shippy.
func DefaultDataDir() string {
	if dir := os.Getenv("SHIPPY_DATA_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shippy"
	}
	return filepath.Join(home, ".shippy")
}

// Load reads config.json from the data directory, returning defaults
// when the file does not exist.
func Load(dataDir string) (*Config, error) {
	cfg := Default(dataDir)

	data, err := os.ReadFile(filepath.Join(dataDir, "config.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.ProcessingSeconds <= 0 {
		cfg.ProcessingSeconds = 10
	}
	if cfg.FailureNoticeSeconds <= 0 {
		cfg.FailureNoticeSeconds = 5
	}
	return cfg, nil
}

// Save writes the configuration back to config.json.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	path := filepath.Join(c.dataDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// DataDir returns the resolved data directory.
func (c *Config) DataDir() string {
	return c.dataDir
}

// ProcessingDelay returns the simulated gateway delay as a duration.
func (c *Config) ProcessingDelay() time.Duration {
	return time.Duration(c.ProcessingSeconds) * time.Second
}

// FailureNoticeDelay returns the failure screen duration.
func (c *Config) FailureNoticeDelay() time.Duration {
	return time.Duration(c.FailureNoticeSeconds) * time.Second
}

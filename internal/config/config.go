// Package config holds all campuseats configuration: API endpoint, data
// directory, location resolution, and UI defaults. Configuration is read
// from a YAML file with environment variable overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all campuseats configuration.
type Config struct {
	// API configures the restaurant API client.
	API APIConfig `yaml:"api"`

	// Data configures local persistence.
	Data DataConfig `yaml:"data"`

	// Location configures device location resolution.
	Location LocationConfig `yaml:"location"`

	// UI configures interface defaults.
	UI UIConfig `yaml:"ui"`

	// Logging configures the zap logger.
	Logging LoggingConfig `yaml:"logging"`

	// path is the file this configuration was loaded from.
	path string
}

// Path returns the file this configuration was loaded from, or "" for a
// configuration that was never on disk.
func (c *Config) Path() string { return c.path }

// APIConfig configures the restaurant API client.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// DataConfig configures local persistence.
type DataConfig struct {
	// Path of the SQLite store holding the session and preferences.
	StorePath string `yaml:"store_path"`
}

// LocationConfig configures device location resolution.
type LocationConfig struct {
	// Fixed coordinates skip the network lookup entirely.
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`

	// Endpoint is an IP geolocation service; empty disables lookup.
	Endpoint string `yaml:"endpoint"`
}

// UIConfig configures interface defaults. Theme and language become
// persisted preferences once the user toggles them.
type UIConfig struct {
	Language string `yaml:"language"` // "fi" or "en"
	Theme    string `yaml:"theme"`    // "dark" or "light"
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		API: APIConfig{
			BaseURL: "https://media2.edu.metropolia.fi/restaurant/api/v1",
			Timeout: "30s",
		},
		Data: DataConfig{
			StorePath: filepath.Join(home, ".campuseats", "campuseats.db"),
		},
		Location: LocationConfig{
			Endpoint: "http://ip-api.com/json",
		},
		UI: UIConfig{
			Language: "fi",
			Theme:    "dark",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(home, ".campuseats", "campuseats.log"),
		},
	}
}

// DefaultPath is the conventional config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".campuseats", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("CAMPUSEATS_API_URL"); url != "" {
		c.API.BaseURL = url
	}
	if path := os.Getenv("CAMPUSEATS_DB"); path != "" {
		c.Data.StorePath = path
	}
	if lang := os.Getenv("CAMPUSEATS_LANG"); lang != "" {
		c.UI.Language = lang
	}
	if endpoint := os.Getenv("CAMPUSEATS_GEO_URL"); endpoint != "" {
		c.Location.Endpoint = endpoint
	}
}

// APITimeout returns the API timeout as a duration.
func (c *Config) APITimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for the
// barberdesk client.
//
// Configuration lives in TOML with sensible defaults and environment
// variable overrides:
//   - ~/.barberdesk/config.toml
//   - BARBERDESK_* environment variables (highest precedence)
//   - Built-in defaults
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults.
const (
	DefaultAPIURL      = "https://api.gobarber.example.com"
	DefaultTimeoutSecs = 15
	DefaultDirName     = ".barberdesk"
	DefaultFileName    = "config.toml"
	DefaultStoreFile   = "state.db"
	DefaultLogFile     = "client.log"
)

// Config is the complete client configuration.
type Config struct {
	// API configuration
	API APIConfig `toml:"api"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Storage configuration
	Storage StorageConfig `toml:"storage"`
}

// APIConfig points the client at the appointment service.
type APIConfig struct {
	// URL is the base URL of the service.
	URL string `toml:"url"`
	// TimeoutSecs is the per-request timeout in seconds.
	TimeoutSecs int `toml:"timeout_secs"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// Locale is the startup language tag (e.g. "pt-BR"). The persisted
	// preference in the store wins once set; this seeds first launch.
	Locale string `toml:"locale"`
}

// StorageConfig locates local state.
type StorageConfig struct {
	// Dir is the state directory. Empty means ~/.barberdesk.
	Dir string `toml:"dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			URL:         DefaultAPIURL,
			TimeoutSecs: DefaultTimeoutSecs,
		},
		UI: UIConfig{
			Locale: "pt-BR",
		},
	}
}

// Dir returns the state directory, creating nothing.
func (c *Config) Dir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

// StorePath returns the path of the key-value store database.
func (c *Config) StorePath() (string, error) {
	dir, err := c.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultStoreFile), nil
}

// LogPath returns the path of the log file.
func (c *Config) LogPath() (string, error) {
	dir, err := c.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultLogFile), nil
}

// Timeout returns the API timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSecs) * time.Second
}

// Validate checks the configuration for values the client cannot run with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.url %q is not an absolute URL", c.API.URL)
	}
	if c.API.TimeoutSecs <= 0 {
		return errors.New("api.timeout_secs must be positive")
	}
	return nil
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName, DefaultFileName), nil
}

// Load reads the config file at path, layering file values over defaults and
// environment overrides over both. A missing file is not an error; the
// defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv layers BARBERDESK_* overrides onto cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv("BARBERDESK_API_URL"); v != "" {
		cfg.API.URL = v
	}
	if v := os.Getenv("BARBERDESK_API_TIMEOUT_SECS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.API.TimeoutSecs = secs
		}
	}
	if v := os.Getenv("BARBERDESK_LOCALE"); v != "" {
		cfg.UI.Locale = v
	}
	if v := os.Getenv("BARBERDESK_DIR"); v != "" {
		cfg.Storage.Dir = v
	}
}

// Save writes cfg to path in TOML, creating parent directories as needed.
// The write is atomic: temp file then rename.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(cfg); err != nil {
		tmp.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

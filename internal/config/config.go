package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the few settings linemark reads at startup.
type Config struct {
	// StorePath is the sqlite settings database location.
	StorePath string `json:"store"`

	// Verbosity is the commonlog verbosity level.
	Verbosity int `json:"verbosity"`
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	defaults, err := defaultConfig()
	if err != nil {
		return nil, err
	}

	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user config directory: %w", err)
		}
		path = filepath.Join(configDir, "linemark", "config.json")
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg := *defaults
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	if cfg.StorePath == "" {
		cfg.StorePath = defaults.StorePath
	}

	return &cfg, nil
}

func defaultConfig() (*Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user config directory: %w", err)
	}
	return &Config{
		StorePath: filepath.Join(configDir, "linemark", "bookmarks.db"),
		Verbosity: 1,
	}, nil
}

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-level configuration loaded from ~/.config/taxa/config.yaml.
type Config struct {
	Dataset string `yaml:"dataset"`  // default markup file, overridden by --file
	NoColor bool   `yaml:"no_color"` // disable styling in the explorer
}

// defaultConfigPath returns ~/.config/taxa/config.yaml.
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "taxa", "config.yaml"), nil
}

// loadConfig reads the config file at path, falling back to the default
// location when path is empty. A missing file is not an error; it yields the
// zero config.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return Config{}, err
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: bad config: %w", path, err)
	}
	return cfg, nil
}

// Package config loads the optional YAML configuration file for the
// dashboard server. Flags override file values; the file overrides defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file looked up in the working directory.
const FileName = "co-dashboard.yaml"

// Config holds the server settings.
type Config struct {
	// Port is the HTTP listen port.
	Port int `yaml:"port"`

	// DataFile is the path to the GeoJSON source file.
	DataFile string `yaml:"data_file"`

	// RankingSize is the default top/bottom list length.
	RankingSize int `yaml:"ranking_size"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:        8080,
		DataFile:    "data/nigeria_state_co.geojson",
		RankingSize: 3,
	}
}

// Load reads the config file at path. A missing file is not an error: the
// defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the settings for values the server cannot run with.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d outside [1, 65535]", c.Port)
	}
	if c.DataFile == "" {
		return errors.New("data_file must not be empty")
	}
	if c.RankingSize < 1 {
		return fmt.Errorf("ranking_size %d must be at least 1", c.RankingSize)
	}
	return nil
}

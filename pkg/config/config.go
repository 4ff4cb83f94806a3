package config

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/go-homedir"
)

// Config carries the default paths the lockmake commands operate on.
// Command flags override these per invocation.
type Config struct {
	LockPath     string `json:"lock-path"`
	ManifestPath string `json:"manifest-path"`
	OutputDir    string `json:"output-dir"`
}

const (
	DefaultConfigPath = "~/.config/lockmake/config.json"

	DefaultLockPath     = "composer.lock"
	DefaultManifestPath = "composer.json"
	DefaultOutputDir    = "."
)

// LoadConfig reads the config file named by LOCKMAKE_CONFIG, falling
// back to the default location, falling back to built-in defaults when
// no file exists.
func LoadConfig() (*Config, error) {
	if loc := os.Getenv("LOCKMAKE_CONFIG"); loc != "" {
		return loadFile(loc)
	}

	path, err := homedir.Expand(DefaultConfigPath)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err == nil {
		return loadFile(path)
	}

	var cfg Config
	cfg.setDefaults()

	return &cfg, nil
}

func loadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	var cfg Config

	err = json.NewDecoder(f).Decode(&cfg)
	if err != nil {
		return nil, err
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.LockPath == "" {
		c.LockPath = DefaultLockPath
	}

	if c.ManifestPath == "" {
		c.ManifestPath = DefaultManifestPath
	}

	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
}

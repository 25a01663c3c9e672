// Package config loads the bitrunner YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid")

// Config holds every tunable of the CLI and the long-running miner.
type Config struct {
	// DataDir holds the newline-delimited server lists and single-value files.
	DataDir string `yaml:"data_dir"`
	// LedgerPath is the SQLite file recording contract attempts.
	LedgerPath string `yaml:"ledger_path"`
	// WorldPath is the YAML snapshot of the host network.
	WorldPath string `yaml:"world_path"`
	// MinerScript is deployed to every mining server.
	MinerScript string `yaml:"miner_script"`
	// HomeReserveGB is RAM on the root host kept free for interactive scripts.
	HomeReserveGB float64 `yaml:"home_reserve_gb"`
	// QueueCapacity bounds the mining notification queue.
	QueueCapacity int `yaml:"queue_capacity"`
	// RootHost is where discovery starts.
	RootHost string `yaml:"root_host"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:       "data",
		LedgerPath:    filepath.Join("data", "ledger.db"),
		WorldPath:     "world.yaml",
		MinerScript:   "/scripts/remote/miner.js",
		HomeReserveGB: 200,
		QueueCapacity: 50,
		RootHost:      "home",
	}
}

// Load reads path over Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.DataDir) == "":
		return fmt.Errorf("%w: data_dir is empty", ErrInvalidConfig)
	case strings.TrimSpace(c.MinerScript) == "":
		return fmt.Errorf("%w: miner_script is empty", ErrInvalidConfig)
	case strings.TrimSpace(c.RootHost) == "":
		return fmt.Errorf("%w: root_host is empty", ErrInvalidConfig)
	case c.HomeReserveGB < 0:
		return fmt.Errorf("%w: home_reserve_gb must be >= 0, got %v", ErrInvalidConfig, c.HomeReserveGB)
	case c.QueueCapacity < 1:
		return fmt.Errorf("%w: queue_capacity must be >= 1, got %d", ErrInvalidConfig, c.QueueCapacity)
	}
	return nil
}

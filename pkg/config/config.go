// Package config loads fittrack settings from an optional .env file and a
// YAML config file in the data directory. Environment variables win over
// file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds user settings outside the tracked data itself.
type Config struct {
	// DataDir overrides the default data directory.
	DataDir string `yaml:"data_dir"`
	// BodyWeight in lbs, used by the bench press milestone badge.
	BodyWeight float64 `yaml:"body_weight"`
	// LogLevel is a logrus level name ("debug", "info", ...).
	LogLevel string `yaml:"log_level"`
}

const configFileName = "config.yml"

// Load reads .env (if present in the working directory), then the YAML
// config under dataDir, then applies FITTRACK_* environment overrides.
// A missing config file yields defaults, not an error.
func Load(dataDir string) (*Config, error) {
	// Best effort; a missing .env is the common case.
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel: "info",
	}

	path := filepath.Join(dataDir, configFileName)
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if dir := os.Getenv("FITTRACK_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	if bw := os.Getenv("FITTRACK_BODY_WEIGHT"); bw != "" {
		v, err := strconv.ParseFloat(bw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid FITTRACK_BODY_WEIGHT %q: %w", bw, err)
		}
		cfg.BodyWeight = v
	}
	if lvl := os.Getenv("FITTRACK_LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

// Save writes the config back to dataDir as YAML.
func (c *Config) Save(dataDir string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}
	return os.WriteFile(filepath.Join(dataDir, configFileName), data, 0644)
}

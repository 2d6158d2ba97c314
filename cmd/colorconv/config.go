package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the optional colorconv.yaml configuration.
type Config struct {
	To      string    `yaml:"to,omitempty"`
	Palette string    `yaml:"palette,omitempty"`
	Tonemap string    `yaml:"tonemap,omitempty"`
	Log     LogConfig `yaml:"log"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
	File   string `yaml:"file,omitempty"`
}

func defaultConfig() Config {
	return Config{
		To:      "LinearSrgbA",
		Tonemap: "none",
		Log:     LogConfig{Level: "warn", Format: "text"},
	}
}

// LoadOptional reads the config file at path if present. A missing file
// yields the defaults.
func LoadOptional(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv overrides logging settings from COLORCONV_LOG_* variables.
func (c *Config) applyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv("COLORCONV_LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(getenv("COLORCONV_LOG_FORMAT")); v != "" {
		c.Log.Format = v
	}
	if v := strings.TrimSpace(getenv("COLORCONV_LOG_FILE")); v != "" {
		c.Log.File = v
	}
}

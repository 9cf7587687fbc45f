// Package config loads application settings from an optional config.yaml
// in the data directory, with environment overrides for the API key.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults applied when config.yaml is absent or leaves fields unset.
const (
	DefaultModel       = "claude-3-5-sonnet-latest"
	DefaultBaseURL     = "https://api.anthropic.com/v1/messages"
	DefaultMaxTokens   = 4096
	DefaultTemperature = 0.7
)

const configFileName = "config.yaml"

// Config holds all trackmap settings.
type Config struct {
	// APIKey authenticates against the generation endpoint. Usually set
	// via TRACKMAP_API_KEY or ANTHROPIC_API_KEY rather than the file.
	APIKey string `yaml:"api_key"`

	// Model is the generation model identifier.
	Model string `yaml:"model"`

	// MaxTokens caps the generated reply length.
	MaxTokens int `yaml:"max_tokens"`

	// Temperature is the sampling temperature for generation.
	Temperature float64 `yaml:"temperature"`

	// BaseURL is the generation endpoint URL.
	BaseURL string `yaml:"base_url"`

	// DataDir holds roadmaps.json and config.yaml. Not itself read from
	// the file; resolved before loading.
	DataDir string `yaml:"-"`
}

// DefaultDataDir returns ~/.trackmap, falling back to a relative
// .trackmap when the home directory cannot be resolved.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".trackmap"
	}
	return filepath.Join(home, ".trackmap")
}

// Load reads config.yaml from dir if present and applies defaults.
// TRACKMAP_API_KEY always overrides the key; ANTHROPIC_API_KEY is only a
// fallback when no key was configured. A missing file is not an error; a
// malformed one is.
func Load(dir string) (Config, error) {
	cfg := Config{DataDir: dir}

	data, err := os.ReadFile(filepath.Join(dir, configFileName))
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", configFileName, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to read %s: %w", configFileName, err)
	}

	cfg.applyDefaults()

	if key := os.Getenv("TRACKMAP_API_KEY"); key != "" {
		cfg.APIKey = key
	} else if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" && cfg.APIKey == "" {
		cfg.APIKey = key
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
}

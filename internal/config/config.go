package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"shellfs/internal/util"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	// DefaultPrompt is printed before each interactive command is read.
	DefaultPrompt = "shellfs> "

	// DefaultSaveFile receives the implicit save performed by quit.
	DefaultSaveFile = "shellfs.sav"

	// DefaultLogLvl is the log verbosity when no override is given.
	DefaultLogLvl = util.InfoLevel
)

// Config contains runtime configuration values for the shell session.
type Config struct {
	Prompt   string        // String printed before each command prompt (Default "shellfs> ")
	SaveFile string        // Path quit implicitly saves the namespace to (Default "shellfs.sav")
	LogLvl   util.LogLevel // Log verbosity level (Default info)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero
// values when loading partial configuration. See [Config] for field
// descriptions.
type ConfigOverride struct {
	Prompt   *string        `yaml:"prompt,omitempty" json:"prompt,omitempty"`
	SaveFile *string        `yaml:"save_file,omitempty" json:"save_file,omitempty"`
	LogLvl   *util.LogLevel `yaml:"log_level,omitempty" json:"log_level,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		Prompt:   DefaultPrompt,
		SaveFile: DefaultSaveFile,
		LogLvl:   DefaultLogLvl,
	}
}

// NewConfig creates a Config from defaults plus an optional override.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.Prompt != nil {
		c.Prompt = *override.Prompt
	}
	if override.SaveFile != nil {
		c.SaveFile = *override.SaveFile
	}
	if override.LogLvl != nil {
		c.LogLvl = *override.LogLvl
	}
}

// LoadConfigOverrideFile loads configuration overrides from a file without
// merging. Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with
// defaults. Combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/adrg/xdg"
)

// Config holds optional user preferences. Every required input of a
// transform stays a command-line argument; the config file only supplies
// defaults that flags override.
type Config struct {
	DateFormat      string   `json:"date_format"`      // default output format for the dates command
	ExcludePatterns []string `json:"exclude_patterns"` // glob patterns skipped by folder commands
	PrettyTables    bool     `json:"pretty_tables"`    // width-aligned table rendering by default
	LogFile         string   `json:"log_file"`         // per-file event log for folder commands, empty disables
}

// DefaultConfig returns the defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		DateFormat:      "YYYY-MM-DD",
		ExcludePatterns: []string{},
		PrettyTables:    false,
		LogFile:         "",
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config on all platforms for consistency.
// Can be overridden for testing.
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(xdg.ConfigHome, "notefmt", "config.json")
	}
	return filepath.Join(home, ".config", "notefmt", "config.json")
}

// Load reads preferences from the config directory. A missing file is not
// an error: defaults are returned.
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.ExcludePatterns == nil {
		cfg.ExcludePatterns = []string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}
	return cfg, nil
}

// Save writes preferences to the config directory.
func (c *Config) Save() error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the preferences.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DateFormat, validation.Required),
		validation.Field(&c.ExcludePatterns, validation.Each(validation.By(validGlob))),
	)
}

func validGlob(value any) error {
	pattern, _ := value.(string)
	if pattern == "" {
		return fmt.Errorf("empty pattern")
	}
	if _, err := filepath.Match(pattern, "probe"); err != nil {
		return fmt.Errorf("bad glob %q: %w", pattern, err)
	}
	return nil
}

// ExpandPaths expands ~ and relative paths in path-valued settings.
func (c *Config) ExpandPaths() error {
	if c.LogFile == "" {
		return nil
	}
	expanded, err := expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}
	c.LogFile = expanded
	return nil
}

func expandPath(path string) (string, error) {
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return home, nil
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}

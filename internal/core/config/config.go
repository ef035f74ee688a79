// Package config handles settings loading and validation for ganttcal.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/status"
	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/task"
)

// Format names accepted in the formats list.
const (
	FormatNameEmoji    = "emoji"
	FormatNameDataview = "dataview"
)

// Config holds the application configuration.
type Config struct {
	Vault VaultConfig `yaml:"vault"`

	// Formats lists the enabled annotation dialects (emoji, dataview).
	Formats []string `yaml:"formats"`

	// GlobalFilter is a literal marker gating which checklist lines count as
	// tasks. Empty means every checklist line is a task.
	GlobalFilter string `yaml:"global_filter"`

	// Statuses are user-defined status descriptors, merged over the built-in
	// seven. Capped at status.MaxCustom entries.
	Statuses []status.Descriptor `yaml:"statuses"`

	Scan ScanConfig `yaml:"scan"`
}

// VaultConfig locates the markdown document collection.
type VaultConfig struct {
	Root string `yaml:"root"`
	// Include and Exclude are doublestar glob patterns relative to the root.
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// ScanConfig tunes the batch scanner.
type ScanConfig struct {
	// Workers is the number of files scanned concurrently.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Vault: VaultConfig{
			Include: []string{"**/*.md"},
		},
		Formats: []string{FormatNameEmoji, FormatNameDataview},
		Scan: ScanConfig{
			Workers: 4,
		},
	}
}

// Load reads configuration from the given path and applies the vault root
// override. If configPath is empty or doesn't exist, returns defaults.
func Load(configPath, vaultRoot string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if vaultRoot != "" {
		cfg.Vault.Root = vaultRoot
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if len(c.Vault.Include) == 0 {
		c.Vault.Include = defaults.Vault.Include
	}
	if len(c.Formats) == 0 {
		c.Formats = defaults.Formats
	}
	if c.Scan.Workers == 0 {
		c.Scan.Workers = defaults.Scan.Workers
	}
}

// EnabledFormats returns the configured dialects as task.Format values.
// Validate guarantees every name is known.
func (c *Config) EnabledFormats() []task.Format {
	formats := make([]task.Format, 0, len(c.Formats))
	for _, name := range c.Formats {
		switch name {
		case FormatNameEmoji:
			formats = append(formats, task.FormatEmoji)
		case FormatNameDataview:
			formats = append(formats, task.FormatDataview)
		}
	}
	return formats
}

// DefaultFormat returns the first enabled dialect, used as the serialization
// target when the caller does not choose one.
func (c *Config) DefaultFormat() task.Format {
	formats := c.EnabledFormats()
	if len(formats) == 0 {
		return task.FormatEmoji
	}
	return formats[0]
}

// Registry builds the status registry from the built-in descriptors plus the
// configured custom entries.
func (c *Config) Registry() (*status.Registry, error) {
	return status.NewRegistry(c.Statuses)
}

package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/status"
)

// Validate checks that the configuration is structurally valid: known dialect
// names, legal glob patterns, a sane worker count, and acceptable custom
// status descriptors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		c.validateFormats(),
		c.validateGlobs(),
		c.validateScan(),
		c.validateStatuses(),
	)
}

// ValidateDeep performs Validate plus I/O checks against the filesystem.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("vault.root", c.Vault.Root, isDirectoryOrEmpty),
	)
}

func (c *Config) validateFormats() error {
	var errs criterio.FieldErrorsBuilder
	for i, name := range c.Formats {
		switch name {
		case FormatNameEmoji, FormatNameDataview:
		default:
			errs = errs.Append(fmt.Sprintf("formats[%d]", i),
				fmt.Errorf("unknown format %q (want %q or %q)", name, FormatNameEmoji, FormatNameDataview))
		}
	}
	return errs.ToError()
}

func (c *Config) validateGlobs() error {
	var errs criterio.FieldErrorsBuilder
	for i, p := range c.Vault.Include {
		if !doublestar.ValidatePattern(p) {
			errs = errs.Append(fmt.Sprintf("vault.include[%d]", i), fmt.Errorf("invalid glob pattern %q", p))
		}
	}
	for i, p := range c.Vault.Exclude {
		if !doublestar.ValidatePattern(p) {
			errs = errs.Append(fmt.Sprintf("vault.exclude[%d]", i), fmt.Errorf("invalid glob pattern %q", p))
		}
	}
	return errs.ToError()
}

func (c *Config) validateScan() error {
	if c.Scan.Workers < 1 {
		return criterio.NewFieldErrors("scan.workers", fmt.Errorf("must be at least 1, got %d", c.Scan.Workers))
	}
	return nil
}

// validateStatuses rejects custom status descriptors the registry would
// refuse: too many entries, invalid or duplicate symbols, missing keys.
func (c *Config) validateStatuses() error {
	var errs criterio.FieldErrorsBuilder

	if len(c.Statuses) > status.MaxCustom {
		errs = errs.Append("statuses",
			fmt.Errorf("%w: got %d, max %d", status.ErrTooManyCustom, len(c.Statuses), status.MaxCustom))
	}

	seen := make(map[string]struct{})
	for _, d := range status.Defaults() {
		seen[d.Symbol] = struct{}{}
	}

	for i, d := range c.Statuses {
		field := fmt.Sprintf("statuses[%d]", i)
		if d.Key == "" {
			errs = errs.Append(field+".key", fmt.Errorf("key is required"))
		}
		if err := status.ValidateSymbol(d.Symbol, true); err != nil {
			errs = errs.Append(field+".symbol", err)
			continue
		}
		if _, dup := seen[d.Symbol]; dup {
			errs = errs.Append(field+".symbol", fmt.Errorf("%w: %q", status.ErrDuplicateSymbol, d.Symbol))
		}
		seen[d.Symbol] = struct{}{}
	}

	return errs.ToError()
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrEmpty validates that a path is an existing directory or unset.
func isDirectoryOrEmpty(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// Package commands implements the ganttcal CLI commands.
package commands

import (
	"os"
	"path/filepath"

	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/config"
	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/gantt"
)

// Flags carries global flag values plus the app graph built in the Before
// hook, shared by all commands.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	VaultRoot  string

	// Config is loaded in the Before hook and available to all commands.
	Config *config.Config

	// App is the wired application graph.
	App *gantt.App
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "ganttcal", "config.yaml")
}

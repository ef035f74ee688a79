package gantt

import (
	"fmt"

	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/config"
	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/status"
	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/taskline"
	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/vault"
)

// App aggregates the configured collaborators commands operate on.
type App struct {
	Config   *config.Config
	Registry *status.Registry
	Vault    *vault.Vault
	Tasks    *Service
}

// NewApp builds the application graph from a validated configuration.
func NewApp(cfg *config.Config) (*App, error) {
	registry, err := cfg.Registry()
	if err != nil {
		return nil, fmt.Errorf("build status registry: %w", err)
	}

	v := vault.New(cfg.Vault.Root, cfg.Vault.Include, cfg.Vault.Exclude)

	opts := taskline.Options{
		Formats:      cfg.EnabledFormats(),
		GlobalFilter: cfg.GlobalFilter,
		Registry:     registry,
	}

	return &App{
		Config:   cfg,
		Registry: registry,
		Vault:    v,
		Tasks:    NewService(v, opts, cfg.Scan.Workers),
	}, nil
}

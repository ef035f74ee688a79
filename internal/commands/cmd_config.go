package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/pkg/iojson"
)

// ConfigCmd implements the ganttcal config command group.
type ConfigCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "ganttcal config validate [--json]",
				Description: "Validates the configuration file, checking dialect names, glob patterns, and custom status symbols.",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runValidate,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runValidate(ctx context.Context, c *cli.Command) error {
	err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)

	if cmd.jsonOutput {
		out := struct {
			Valid bool   `json:"valid"`
			Error string `json:"error,omitempty"`
		}{Valid: err == nil}
		if err != nil {
			out.Error = err.Error()
		}
		if werr := iojson.Write(c.Root().Writer, out); werr != nil {
			return werr
		}
		if err != nil {
			return cli.Exit("", 1)
		}
		return nil
	}

	if err != nil {
		_, _ = fmt.Fprintln(c.Root().Writer, err.Error())
		return cli.Exit("", 1)
	}

	_, _ = fmt.Fprintln(c.Root().Writer, "Configuration is valid")
	return nil
}

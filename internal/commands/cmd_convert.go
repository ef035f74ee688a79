package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/task"
)

// ConvertCmd implements the ganttcal convert command.
type ConvertCmd struct {
	flags *Flags

	// flags
	target string
}

// NewConvertCmd creates a new convert command.
func NewConvertCmd(flags *Flags) *ConvertCmd {
	return &ConvertCmd{flags: flags}
}

// Register adds the convert command to the application.
func (cmd *ConvertCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "convert",
		Usage:     "Rewrite a document's task lines in another dialect",
		UsageText: "ganttcal convert --to <emoji|dataview> <file>",
		Description: `Re-serializes every annotated checklist line of a document in the target
dialect. Free text, tags, list markers and indentation are preserved; only the
annotation tokens change encoding.

Examples:
  ganttcal convert --to dataview notes/todo.md
  ganttcal convert --to emoji notes/todo.md`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "to",
				Usage:       "target dialect (emoji, dataview)",
				Required:    true,
				Destination: &cmd.target,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ConvertCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected <file> argument, got %d", c.Args().Len())
	}
	path := c.Args().Get(0)

	var format task.Format
	switch cmd.target {
	case string(task.FormatEmoji):
		format = task.FormatEmoji
	case string(task.FormatDataview):
		format = task.FormatDataview
	default:
		return fmt.Errorf("unknown target dialect %q", cmd.target)
	}

	count, err := cmd.flags.App.Tasks.ConvertFile(ctx, path, format)
	if err != nil {
		return fmt.Errorf("convert %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "Converted %d task line(s) in %s to %s\n", count, path, format)
	return nil
}

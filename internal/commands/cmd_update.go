package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/status"
	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/task"
)

// UpdateCmd implements the ganttcal update command.
type UpdateCmd struct {
	flags *Flags

	// date flags, one per role; empty string means keep
	dates map[task.DateKind]*string

	clear      []string
	priority   string
	statusKey  string
	text       string
	tags       []string
	formatName string
}

// NewUpdateCmd creates a new update command.
func NewUpdateCmd(flags *Flags) *UpdateCmd {
	return &UpdateCmd{flags: flags}
}

// Register adds the update command to the application.
func (cmd *UpdateCmd) Register(app *cli.Command) *cli.Command {
	cmd.dates = make(map[task.DateKind]*string, len(task.DateKinds))

	dateFlags := make([]cli.Flag, 0, len(task.DateKinds))
	for _, kind := range task.DateKinds {
		dest := new(string)
		cmd.dates[kind] = dest
		dateFlags = append(dateFlags, &cli.StringFlag{
			Name:        string(kind),
			Usage:       fmt.Sprintf("set the %s date (yyyy-mm-dd)", kind),
			Destination: dest,
		})
	}

	updateFlags := append(dateFlags,
		&cli.StringSliceFlag{
			Name:        "clear",
			Usage:       "clear a date field (created, start, scheduled, due, cancelled, completion); repeatable",
			Destination: &cmd.clear,
		},
		&cli.StringFlag{
			Name:        "priority",
			Aliases:     []string{"p"},
			Usage:       "set priority (highest, high, medium, normal, low, lowest)",
			Destination: &cmd.priority,
		},
		&cli.StringFlag{
			Name:        "status",
			Aliases:     []string{"s"},
			Usage:       "set status key (todo, done, canceled, ...)",
			Destination: &cmd.statusKey,
		},
		&cli.StringFlag{
			Name:        "text",
			Aliases:     []string{"t"},
			Usage:       "replace the task description",
			Destination: &cmd.text,
		},
		&cli.StringSliceFlag{
			Name:        "tag",
			Usage:       "replace the tag list; repeatable",
			Destination: &cmd.tags,
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       "target dialect for the rewritten line (emoji, dataview)",
			Destination: &cmd.formatName,
		},
	)

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "update",
		Usage:     "Update a single task line in place",
		UsageText: "ganttcal update [options] <file> <line>",
		Description: `Rewrites one annotated checklist line, merging the given changes into the
existing task. Unspecified fields keep their current value; --clear removes a
date field entirely.

Examples:
  ganttcal update --due 2024-03-01 notes/todo.md 12
  ganttcal update --clear due --priority high notes/todo.md 12
  ganttcal update --status done --completion 2024-03-02 notes/todo.md 12`,
		Flags:  updateFlags,
		Action: cmd.run,
	})

	return app
}

func (cmd *UpdateCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected <file> <line> arguments, got %d", c.Args().Len())
	}
	path := c.Args().Get(0)
	lineNumber, err := strconv.Atoi(c.Args().Get(1))
	if err != nil || lineNumber < 1 {
		return fmt.Errorf("invalid line number %q", c.Args().Get(1))
	}

	up, err := cmd.buildUpdateSet()
	if err != nil {
		return err
	}

	format := cmd.flags.Config.DefaultFormat()
	switch cmd.formatName {
	case "":
	case string(task.FormatEmoji):
		format = task.FormatEmoji
	case string(task.FormatDataview):
		format = task.FormatDataview
	default:
		return fmt.Errorf("unknown format %q", cmd.formatName)
	}

	line, err := cmd.flags.App.Tasks.Update(ctx, path, lineNumber, up, format)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	_, _ = fmt.Fprintln(c.Root().Writer, line)
	return nil
}

// buildUpdateSet translates flag values into the sparse update set. A date
// flag and a clear of the same field conflict.
func (cmd *UpdateCmd) buildUpdateSet() (task.UpdateSet, error) {
	var up task.UpdateSet

	cleared := make(map[task.DateKind]bool, len(cmd.clear))
	for _, name := range cmd.clear {
		kind := task.DateKind(name)
		if _, ok := cmd.dates[kind]; !ok {
			return up, fmt.Errorf("unknown date field %q in --clear", name)
		}
		cleared[kind] = true
		up.SetDateUpdate(kind, task.ClearDate())
	}

	for kind, dest := range cmd.dates {
		if *dest == "" {
			continue
		}
		if cleared[kind] {
			return up, fmt.Errorf("cannot both set and clear %s", kind)
		}
		date, err := time.Parse(task.DateLayout, *dest)
		if err != nil {
			return up, fmt.Errorf("invalid %s date %q: want yyyy-mm-dd", kind, *dest)
		}
		up.SetDateUpdate(kind, task.SetDate(date))
	}

	if cmd.priority != "" {
		p := task.Priority(cmd.priority)
		if !p.Valid() {
			return up, fmt.Errorf("invalid priority %q", cmd.priority)
		}
		up.Priority = &p
	}

	if cmd.statusKey != "" {
		key := status.Key(cmd.statusKey)
		if _, ok := cmd.flags.App.Registry.ByKey(key); !ok {
			return up, fmt.Errorf("unknown status key %q", cmd.statusKey)
		}
		up.Status = &key
	}

	if cmd.text != "" {
		up.Description = &cmd.text
	}

	if len(cmd.tags) > 0 {
		tags := cmd.tags
		up.Tags = &tags
	}

	return up, nil
}

package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/status"
	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/styles"
	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/task"
	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/pkg/iojson"
)

// ListCmd implements the ganttcal list command.
type ListCmd struct {
	flags *Flags

	// flags
	file       string
	statusKey  string
	jsonOutput bool
}

// NewListCmd creates a new list command.
func NewListCmd(flags *Flags) *ListCmd {
	return &ListCmd{flags: flags}
}

// Register adds the list command to the application.
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List task lines in the vault",
		UsageText: "ganttcal list [--file <path>] [--status <key>] [--json]",
		Description: `Scans the vault for annotated checklist lines and prints them as a table.

Use --json for LLM-friendly JSON lines output with every parsed field.

Examples:
  ganttcal list
  ganttcal list --status done
  ganttcal list --file projects/release.md --json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "scan a single document instead of the whole vault",
				Destination: &cmd.file,
			},
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "filter by status key (todo, done, canceled, ...)",
				Destination: &cmd.statusKey,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	app := cmd.flags.App

	var (
		records []task.Record
		err     error
	)
	if cmd.file != "" {
		records, err = app.Tasks.ScanFile(ctx, cmd.file)
	} else {
		records, err = app.Tasks.ScanAll(ctx)
	}
	if err != nil {
		return fmt.Errorf("scan tasks: %w", err)
	}

	if cmd.statusKey != "" {
		filtered := records[:0]
		for _, r := range records {
			if r.Status == status.Key(cmd.statusKey) {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	if len(records) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No tasks found\n")
		}
		return nil
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, r := range records {
			if err := iojson.WriteLine(out, r); err != nil {
				return fmt.Errorf("encode task: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "LOCATION\tSTATUS\tPRIORITY\tDUE\tTAGS\tDESCRIPTION\tWARNING")

	for _, r := range records {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			styles.Muted.Render(fmt.Sprintf("%s:%d", r.FileName, r.LineNumber)),
			cmd.renderStatus(r.Status),
			styles.RenderPriority(r.Priority),
			renderDate(r.DueDate),
			renderTags(r.Tags),
			r.Description,
			styles.RenderWarning(r.Warning),
		)
	}

	return w.Flush()
}

func (cmd *ListCmd) renderStatus(key status.Key) string {
	if desc, ok := cmd.flags.App.Registry.ByKey(key); ok {
		return styles.StatusBadge(desc)
	}
	return string(key)
}

func renderDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(task.DateLayout)
}

func renderTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = styles.Tag.Render("#" + tag)
	}
	return strings.Join(parts, " ")
}

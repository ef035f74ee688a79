// Package styles provides shared lipgloss styles for CLI output.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/status"
	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/task"
)

var (
	// Warning renders non-fatal parse warnings (mixed-format, unscheduled).
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
	// Muted renders secondary information like file paths and line numbers.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	// Tag renders hashtag labels.
	Tag = lipgloss.NewStyle().Foreground(lipgloss.Color("#7dcfff"))
)

// priorityColors maps non-normal priority levels to display colors.
var priorityColors = map[task.Priority]lipgloss.Color{
	task.PriorityHighest: lipgloss.Color("#f7768e"),
	task.PriorityHigh:    lipgloss.Color("#ff9e64"),
	task.PriorityMedium:  lipgloss.Color("#e0af68"),
	task.PriorityLow:     lipgloss.Color("#7aa2f7"),
	task.PriorityLowest:  lipgloss.Color("#565f89"),
}

// StatusBadge renders a status name on its descriptor colors.
func StatusBadge(d status.Descriptor) string {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(d.BackgroundColor)).
		Foreground(lipgloss.Color(d.TextColor)).
		Padding(0, 1)
	return style.Render(d.Name)
}

// RenderPriority renders a priority level in its display color. Normal
// priority renders as plain text.
func RenderPriority(p task.Priority) string {
	c, ok := priorityColors[p]
	if !ok {
		return string(p)
	}
	return lipgloss.NewStyle().Foreground(c).Render(string(p))
}

// RenderWarning renders a record warning, or an empty string when none.
func RenderWarning(warning string) string {
	if warning == "" {
		return ""
	}
	return Warning.Render(warning)
}

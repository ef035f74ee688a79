package taskline

import (
	"strings"

	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/status"
	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/task"
)

// Serialize merges an update set into an existing record and renders one
// canonical task line in the target dialect, excluding the list marker and
// indentation (the caller re-attaches those when writing back).
//
// Merge semantics: nil pointer fields keep the existing value; date fields
// honor the keep/set/clear three-state of task.DateUpdate. Rendering order is
// fixed: checkbox, global filter, tags, description, priority, then dates in
// task.DateKinds order. Normal priority and cleared dates emit no token.
func Serialize(existing *task.Record, up task.UpdateSet, format task.Format, globalFilter string, reg *status.Registry) string {
	if existing == nil {
		existing = &task.Record{Status: status.KeyTodo, Priority: task.PriorityNormal}
	}
	if reg == nil {
		reg = defaultRegistry
	}
	if format != task.FormatDataview {
		format = task.FormatEmoji
	}

	merged := mergeRecord(existing, up)

	parts := []string{"[" + checkboxSymbol(merged, reg) + "]"}

	if filter := strings.TrimSpace(globalFilter); filter != "" {
		parts = append(parts, filter)
	}

	for _, tag := range merged.Tags {
		parts = append(parts, "#"+tag)
	}

	if merged.Description != "" {
		parts = append(parts, merged.Description)
	}

	if tok := PriorityToken(merged.Priority, format); tok != "" {
		parts = append(parts, tok)
	}

	for _, kind := range task.DateKinds {
		date := merged.Date(kind)
		if date == nil {
			continue
		}
		parts = append(parts, DateToken(kind, date.Format(task.DateLayout), format))
	}

	return strings.Join(parts, " ")
}

// mergeRecord applies the update set over the existing record and returns the
// merged view used for rendering. The existing record is never mutated.
func mergeRecord(existing *task.Record, up task.UpdateSet) *task.Record {
	merged := *existing

	if up.Description != nil {
		merged.Description = *up.Description
	}
	if up.Status != nil {
		merged.Status = *up.Status
	}
	if up.Completed != nil {
		merged.Completed = *up.Completed
	}
	if up.Cancelled != nil {
		merged.Cancelled = *up.Cancelled
	}
	if up.Priority != nil {
		merged.Priority = *up.Priority
	}
	if up.Tags != nil {
		merged.Tags = *up.Tags
	}
	if merged.Priority == "" {
		merged.Priority = task.PriorityNormal
	}

	for _, kind := range task.DateKinds {
		merged.SetDate(kind, up.DateUpdate(kind).Apply(existing.Date(kind)))
	}

	return &merged
}

// checkboxSymbol resolves the single character inside the checkbox. A status
// key takes precedence; unknown keys fall back to the todo space. Records
// without a status key derive the symbol from the legacy booleans.
func checkboxSymbol(merged *task.Record, reg *status.Registry) string {
	if merged.Status != "" {
		if desc, ok := reg.ByKey(merged.Status); ok {
			return desc.Symbol
		}
		return " "
	}

	switch {
	case merged.Cancelled:
		return "-"
	case merged.Completed:
		return "x"
	default:
		return " "
	}
}

// Package task defines the task record domain model produced by parsing
// annotated markdown checklist lines.
package task

import (
	"time"

	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/status"
)

// Priority is the six-level task priority. A line with no priority annotation
// always parses to PriorityNormal; the field is never empty on a valid record.
type Priority string

const (
	PriorityHighest Priority = "highest"
	PriorityHigh    Priority = "high"
	PriorityMedium  Priority = "medium"
	PriorityNormal  Priority = "normal"
	PriorityLow     Priority = "low"
	PriorityLowest  Priority = "lowest"
)

// Priorities lists all levels from highest to lowest.
var Priorities = []Priority{
	PriorityHighest,
	PriorityHigh,
	PriorityMedium,
	PriorityNormal,
	PriorityLow,
	PriorityLowest,
}

// Valid reports whether p is one of the six known levels.
func (p Priority) Valid() bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}

// Rank returns a sortable rank, 0 = highest.
func (p Priority) Rank() int {
	for i, known := range Priorities {
		if p == known {
			return i
		}
	}
	return len(Priorities)
}

// Format identifies which annotation dialect a line uses.
type Format string

const (
	// FormatEmoji encodes priority and dates as unicode glyph tokens.
	FormatEmoji Format = "emoji"
	// FormatDataview encodes priority and dates as [name:: value] tokens.
	FormatDataview Format = "dataview"
	// FormatMixed marks a line carrying tokens from both dialects.
	// It only ever appears as a detection result, never on a stored record.
	FormatMixed Format = "mixed"
)

// DateKind names one of the six date roles a task line can carry.
type DateKind string

const (
	DateCreated    DateKind = "created"
	DateStart      DateKind = "start"
	DateScheduled  DateKind = "scheduled"
	DateDue        DateKind = "due"
	DateCancelled  DateKind = "cancelled"
	DateCompletion DateKind = "completion"
)

// DateKinds lists all date roles in canonical render order.
// Serialization must emit date tokens in exactly this order.
var DateKinds = []DateKind{
	DateCreated,
	DateStart,
	DateScheduled,
	DateDue,
	DateCancelled,
	DateCompletion,
}

// Warning values attached to a record during assembly.
const (
	// WarningMixedFormat marks a line containing both emoji and dataview tokens.
	WarningMixedFormat = "mixed-format"
	// WarningUnscheduled marks a line with no date and no non-normal priority.
	WarningUnscheduled = "unscheduled"
)

// DateLayout is the only date format recognized and emitted by the engine.
const DateLayout = "2006-01-02"

// Record is one parsed task line. Records are immutable once produced; an
// update constructs a new line via merge + serialize and re-parses it.
type Record struct {
	FilePath   string `json:"file_path"`
	FileName   string `json:"file_name"`
	LineNumber int    `json:"line_number"` // 1-based

	// Content is the raw remainder after the checkbox, global-filter stripped.
	Content string `json:"content"`
	// Description is Content with all recognized tokens and tags removed.
	Description string `json:"description"`

	Completed bool       `json:"completed"`
	Cancelled bool       `json:"cancelled"`
	Status    status.Key `json:"status"`

	Format   Format   `json:"format,omitempty"`
	Priority Priority `json:"priority"`
	Tags     []string `json:"tags,omitempty"`

	CreatedDate    *time.Time `json:"created_date,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	ScheduledDate  *time.Time `json:"scheduled_date,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	CancelledDate  *time.Time `json:"cancelled_date,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`

	Warning string `json:"warning,omitempty"`
}

// Date returns the date value for a given role, nil when absent.
func (r *Record) Date(kind DateKind) *time.Time {
	switch kind {
	case DateCreated:
		return r.CreatedDate
	case DateStart:
		return r.StartDate
	case DateScheduled:
		return r.ScheduledDate
	case DateDue:
		return r.DueDate
	case DateCancelled:
		return r.CancelledDate
	case DateCompletion:
		return r.CompletionDate
	}
	return nil
}

// SetDate assigns the date value for a given role. A nil value clears it.
func (r *Record) SetDate(kind DateKind, t *time.Time) {
	switch kind {
	case DateCreated:
		r.CreatedDate = t
	case DateStart:
		r.StartDate = t
	case DateScheduled:
		r.ScheduledDate = t
	case DateDue:
		r.DueDate = t
	case DateCancelled:
		r.CancelledDate = t
	case DateCompletion:
		r.CompletionDate = t
	}
}

// HasAnyDate reports whether at least one date role is set.
func (r *Record) HasAnyDate() bool {
	for _, kind := range DateKinds {
		if r.Date(kind) != nil {
			return true
		}
	}
	return false
}

// Scheduled reports whether the record carries any temporal or priority
// annotation. Records without one receive WarningUnscheduled at parse time.
func (r *Record) Scheduled() bool {
	return r.HasAnyDate() || r.Priority != PriorityNormal
}

package task

import (
	"time"

	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/status"
)

// dateOp is the tag of the three-state date update variant.
type dateOp int

const (
	dateKeep dateOp = iota
	dateSet
	dateClear
)

// DateUpdate is a three-state update for an optional date field:
// keep the existing value, set a new value, or clear it entirely.
// The zero value keeps. A two-state nullable cannot express the
// keep-vs-clear distinction and must not replace this type.
type DateUpdate struct {
	op    dateOp
	value time.Time
}

// KeepDate leaves the existing date untouched. Same as the zero value.
func KeepDate() DateUpdate { return DateUpdate{} }

// SetDate replaces the date with t (truncated to the calendar day).
func SetDate(t time.Time) DateUpdate {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return DateUpdate{op: dateSet, value: day}
}

// ClearDate removes the date; the serialized line will carry no token for it.
func ClearDate() DateUpdate { return DateUpdate{op: dateClear} }

// IsKeep reports whether the update leaves the field untouched.
func (u DateUpdate) IsKeep() bool { return u.op == dateKeep }

// Apply merges the update against an existing value.
func (u DateUpdate) Apply(existing *time.Time) *time.Time {
	switch u.op {
	case dateSet:
		v := u.value
		return &v
	case dateClear:
		return nil
	default:
		return existing
	}
}

// UpdateSet is a sparse partial record used as serializer input. Nil pointer
// fields keep the existing value; date fields use DateUpdate for the
// keep/set/clear three-state.
type UpdateSet struct {
	Description *string
	Status      *status.Key
	Completed   *bool
	Cancelled   *bool
	Priority    *Priority
	Tags        *[]string

	CreatedDate    DateUpdate
	StartDate      DateUpdate
	ScheduledDate  DateUpdate
	DueDate        DateUpdate
	CancelledDate  DateUpdate
	CompletionDate DateUpdate
}

// DateUpdate returns the update variant for a given date role.
func (u UpdateSet) DateUpdate(kind DateKind) DateUpdate {
	switch kind {
	case DateCreated:
		return u.CreatedDate
	case DateStart:
		return u.StartDate
	case DateScheduled:
		return u.ScheduledDate
	case DateDue:
		return u.DueDate
	case DateCancelled:
		return u.CancelledDate
	case DateCompletion:
		return u.CompletionDate
	}
	return DateUpdate{}
}

// SetDateUpdate assigns the update variant for a given date role.
func (u *UpdateSet) SetDateUpdate(kind DateKind, du DateUpdate) {
	switch kind {
	case DateCreated:
		u.CreatedDate = du
	case DateStart:
		u.StartDate = du
	case DateScheduled:
		u.ScheduledDate = du
	case DateDue:
		u.DueDate = du
	case DateCancelled:
		u.CancelledDate = du
	case DateCompletion:
		u.CompletionDate = du
	}
}

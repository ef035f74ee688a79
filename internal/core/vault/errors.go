package vault

import (
	"errors"
	"fmt"
)

var (
	// ErrLineOutOfRange is returned when a rewrite targets a line number
	// outside the document's current bounds.
	ErrLineOutOfRange = errors.New("line out of range")
	// ErrMalformedMarker is returned when a rewrite target no longer has the
	// expected list-marker + checkbox shape.
	ErrMalformedMarker = errors.New("line is not a task list item")
)

// LineIndexError reports a rewrite against a line number the document no
// longer contains. It satisfies errors.Is(err, ErrLineOutOfRange).
type LineIndexError struct {
	Path string
	Line int
	Max  int
}

func (e *LineIndexError) Error() string {
	return fmt.Sprintf("%s: line %d out of range (document has %d lines)", e.Path, e.Line, e.Max)
}

func (e *LineIndexError) Is(target error) bool {
	return target == ErrLineOutOfRange
}

// MarkerError reports a rewrite target whose text no longer matches the
// indent + marker + checkbox shape, typically after a concurrent edit.
// It satisfies errors.Is(err, ErrMalformedMarker).
type MarkerError struct {
	Path string
	Line int
	Text string
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("%s: line %d is not a task list item: %q", e.Path, e.Line, e.Text)
}

func (e *MarkerError) Is(target error) bool {
	return target == ErrMalformedMarker
}

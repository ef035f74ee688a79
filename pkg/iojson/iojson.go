// Package iojson are utilities for writing JSON output from a command line
// interface perspective.
package iojson

import (
	"encoding/json"
	"io"
)

// WriteLine writes obj as a single compact JSON line, suitable for piping
// into line-oriented tooling.
func WriteLine(w io.Writer, obj any) error {
	enc := json.NewEncoder(w)
	return enc.Encode(obj)
}

// Write writes obj as indented JSON for human consumption.
func Write(w io.Writer, obj any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(obj)
}

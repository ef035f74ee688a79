package taskline

import "regexp"

// checkboxRe matches a markdown checklist line: optional indentation, a list
// marker (-, * or +), and a single-character checkbox. The trailing space
// after the closing bracket is optional so "- [ ]" with no content still
// matches.
var checkboxRe = regexp.MustCompile(`^([ \t]*[-*+][ \t]+)\[(.)\][ \t]?(.*)$`)

// CheckboxLine is the decomposition of a recognized checklist line.
type CheckboxLine struct {
	// Prefix is the indentation plus list marker ("  - "). Callers re-attach
	// it when a serialized line is written back into the document.
	Prefix string
	// Symbol is the single character inside the brackets.
	Symbol string
	// Content is everything after the checkbox.
	Content string
}

// SplitCheckbox recognizes a checklist line and splits it into prefix,
// checkbox symbol, and remainder content. Returns false for any line without
// the marker + checkbox structure; such lines are not tasks.
func SplitCheckbox(line string) (CheckboxLine, bool) {
	m := checkboxRe.FindStringSubmatch(line)
	if m == nil {
		return CheckboxLine{}, false
	}
	return CheckboxLine{Prefix: m[1], Symbol: m[2], Content: m[3]}, true
}

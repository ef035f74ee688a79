package taskline

import "strings"

// PassesFilter reports whether content is eligible under the global filter.
// An empty filter admits everything; otherwise the filter must appear as a
// literal, case-sensitive substring. The filter is never interpreted as a
// pattern.
func PassesFilter(content, filter string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return true
	}
	return strings.Contains(content, filter)
}

// StripFilter removes the first literal occurrence of the global filter from
// content, along with any whitespace immediately following it. No-op when the
// filter is empty or absent.
func StripFilter(content, filter string) string {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return content
	}
	idx := strings.Index(content, filter)
	if idx < 0 {
		return content
	}
	rest := content[idx+len(filter):]
	rest = strings.TrimLeft(rest, " \t")
	return content[:idx] + rest
}

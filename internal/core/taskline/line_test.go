package taskline

import "testing"

func TestSplitCheckbox(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected CheckboxLine
		ok       bool
	}{
		{
			name:     "dash marker with empty checkbox",
			line:     "- [ ] buy milk",
			expected: CheckboxLine{Prefix: "- ", Symbol: " ", Content: "buy milk"},
			ok:       true,
		},
		{
			name:     "star marker",
			line:     "* [x] done thing",
			expected: CheckboxLine{Prefix: "* ", Symbol: "x", Content: "done thing"},
			ok:       true,
		},
		{
			name:     "plus marker",
			line:     "+ [/] in progress",
			expected: CheckboxLine{Prefix: "+ ", Symbol: "/", Content: "in progress"},
			ok:       true,
		},
		{
			name:     "indented",
			line:     "    - [-] cancelled sub task",
			expected: CheckboxLine{Prefix: "    - ", Symbol: "-", Content: "cancelled sub task"},
			ok:       true,
		},
		{
			name:     "tab indented",
			line:     "\t- [?] maybe",
			expected: CheckboxLine{Prefix: "\t- ", Symbol: "?", Content: "maybe"},
			ok:       true,
		},
		{
			name:     "empty content",
			line:     "- [ ]",
			expected: CheckboxLine{Prefix: "- ", Symbol: " ", Content: ""},
			ok:       true,
		},
		{
			name: "plain list item without checkbox",
			line: "- just a bullet",
			ok:   false,
		},
		{
			name: "checkbox with two characters",
			line: "- [xx] not a checkbox",
			ok:   false,
		},
		{
			name: "no list marker",
			line: "[x] floating checkbox",
			ok:   false,
		},
		{
			name: "heading",
			line: "## Tasks",
			ok:   false,
		},
		{
			name: "empty line",
			line: "",
			ok:   false,
		},
		{
			name: "missing space after marker",
			line: "-[x] squeezed",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SplitCheckbox(tt.line)

			if ok != tt.ok {
				t.Fatalf("SplitCheckbox(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if !ok {
				return
			}

			if got != tt.expected {
				t.Errorf("SplitCheckbox(%q) = %+v, want %+v", tt.line, got, tt.expected)
			}
		})
	}
}

func TestSplitCheckbox_PrefixRoundTrip(t *testing.T) {
	line := "  - [x] rebuild the index ✅ 2024-04-01"

	cb, ok := SplitCheckbox(line)
	if !ok {
		t.Fatalf("expected %q to be recognized", line)
	}

	rebuilt := cb.Prefix + "[" + cb.Symbol + "] " + cb.Content
	if rebuilt != line {
		t.Errorf("prefix round trip = %q, want %q", rebuilt, line)
	}
}

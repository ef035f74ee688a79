package taskline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/task"
)

func TestDetectFormat(t *testing.T) {
	both := []task.Format{task.FormatEmoji, task.FormatDataview}

	tests := []struct {
		name    string
		content string
		enabled []task.Format
		want    task.Format
	}{
		{
			name:    "emoji date token",
			content: "ship it 📅 2024-03-01",
			enabled: both,
			want:    task.FormatEmoji,
		},
		{
			name:    "emoji priority glyph only",
			content: "ship it ⏫",
			enabled: both,
			want:    task.FormatEmoji,
		},
		{
			name:    "dataview field",
			content: "ship it [due:: 2024-03-01]",
			enabled: both,
			want:    task.FormatDataview,
		},
		{
			name:    "dataview priority field",
			content: "ship it [priority:: high]",
			enabled: both,
			want:    task.FormatDataview,
		},
		{
			name:    "both dialects",
			content: "ship it ⏫ [due:: 2024-03-01]",
			enabled: both,
			want:    task.FormatMixed,
		},
		{
			name:    "no tokens",
			content: "just words #tag",
			enabled: both,
			want:    "",
		},
		{
			name:    "dataview token with only emoji enabled",
			content: "ship it [due:: 2024-03-01]",
			enabled: []task.Format{task.FormatEmoji},
			want:    "",
		},
		{
			name:    "emoji token with only dataview enabled",
			content: "ship it 📅 2024-03-01",
			enabled: []task.Format{task.FormatDataview},
			want:    "",
		},
		{
			name:    "mixed content with one dialect enabled",
			content: "ship it ⏫ [due:: 2024-03-01]",
			enabled: []task.Format{task.FormatEmoji},
			want:    task.FormatEmoji,
		},
		{
			name:    "bracketed text that is not a field",
			content: "see [link] and [note: x]",
			enabled: both,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.content, tt.enabled))
		})
	}
}

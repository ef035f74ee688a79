package taskline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassesFilter(t *testing.T) {
	t.Run("empty filter admits everything", func(t *testing.T) {
		assert.True(t, PassesFilter("anything at all", ""))
		assert.True(t, PassesFilter("", ""))
	})

	t.Run("whitespace filter admits everything", func(t *testing.T) {
		assert.True(t, PassesFilter("anything", "   "))
	})

	t.Run("literal substring match", func(t *testing.T) {
		assert.True(t, PassesFilter("🎯 do thing", "🎯"))
		assert.False(t, PassesFilter("unrelated item", "🎯"))
	})

	t.Run("case sensitive", func(t *testing.T) {
		assert.True(t, PassesFilter("TODO: fix", "TODO"))
		assert.False(t, PassesFilter("todo: fix", "TODO"))
	})

	t.Run("regex metacharacters are literal", func(t *testing.T) {
		assert.True(t, PassesFilter("task (a.b) here", "(a.b)"))
		assert.False(t, PassesFilter("task aXb here", "(a.b)"))
		assert.False(t, PassesFilter("task a.b here", "(a.b)"))
	})
}

func TestStripFilter(t *testing.T) {
	tests := []struct {
		name    string
		content string
		filter  string
		want    string
	}{
		{name: "empty filter is noop", content: "do thing", filter: "", want: "do thing"},
		{name: "absent filter is noop", content: "do thing", filter: "🎯", want: "do thing"},
		{name: "strips marker and following space", content: "🎯 do thing", filter: "🎯", want: "do thing"},
		{name: "trailing space in configured filter", content: "🎯 do thing", filter: "🎯 ", want: "do thing"},
		{name: "mid content occurrence", content: "do 🎯 thing", filter: "🎯", want: "do thing"},
		{name: "only first occurrence", content: "🎯 one 🎯 two", filter: "🎯", want: "one 🎯 two"},
		{name: "metacharacters literal", content: "a.c (x) rest", filter: "(x)", want: "a.c rest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFilter(tt.content, tt.filter))
		})
	}
}

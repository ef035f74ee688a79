// Package taskline implements the task text transcoding engine: parsing an
// annotated checklist line into a task record and serializing a record plus a
// partial update back into one canonical line.
//
// Two annotation dialects are supported. The emoji dialect encodes priority
// and dates as unicode glyph tokens ("⏫", "📅 2024-03-01"); the dataview
// dialect encodes them as bracketed fields ("[priority:: high]",
// "[due:: 2024-03-01]"). All recognition patterns are compiled once at
// package initialization and shared by every call.
package taskline

import (
	"regexp"

	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/task"
)

// Emoji dialect glyphs.
var emojiPriorityGlyphs = map[task.Priority]string{
	task.PriorityHighest: "🔺",
	task.PriorityHigh:    "⏫",
	task.PriorityMedium:  "🔼",
	task.PriorityLow:     "🔽",
	task.PriorityLowest:  "⏬",
	// PriorityNormal intentionally absent: normal never emits a token.
}

var emojiDateGlyphs = map[task.DateKind]string{
	task.DateCreated:    "➕",
	task.DateStart:      "🛫",
	task.DateScheduled:  "⏳",
	task.DateDue:        "📅",
	task.DateCancelled:  "❌",
	task.DateCompletion: "✅",
}

var glyphToPriority = map[string]task.Priority{
	"🔺": task.PriorityHighest,
	"⏫": task.PriorityHigh,
	"🔼": task.PriorityMedium,
	"🔽": task.PriorityLow,
	"⏬": task.PriorityLowest,
}

// formatConfig holds a dialect's compiled recognition patterns.
type formatConfig struct {
	format     task.Format
	priorityRe *regexp.Regexp
	dateRes    map[task.DateKind]*regexp.Regexp
	detectRe   *regexp.Regexp
}

var emojiConfig = &formatConfig{
	format:     task.FormatEmoji,
	priorityRe: regexp.MustCompile(`(🔺|⏫|🔼|🔽|⏬)`),
	dateRes: map[task.DateKind]*regexp.Regexp{
		task.DateCreated:    regexp.MustCompile(`➕\s*(\d{4}-\d{2}-\d{2})`),
		task.DateStart:      regexp.MustCompile(`🛫\s*(\d{4}-\d{2}-\d{2})`),
		task.DateScheduled:  regexp.MustCompile(`⏳\s*(\d{4}-\d{2}-\d{2})`),
		task.DateDue:        regexp.MustCompile(`📅\s*(\d{4}-\d{2}-\d{2})`),
		task.DateCancelled:  regexp.MustCompile(`❌\s*(\d{4}-\d{2}-\d{2})`),
		task.DateCompletion: regexp.MustCompile(`✅\s*(\d{4}-\d{2}-\d{2})`),
	},
	detectRe: regexp.MustCompile(`🔺|⏫|🔼|🔽|⏬|➕|🛫|⏳|📅|❌|✅`),
}

var dataviewConfig = &formatConfig{
	format:     task.FormatDataview,
	priorityRe: regexp.MustCompile(`\[priority::\s*(highest|high|medium|normal|low|lowest)\s*\]`),
	dateRes: map[task.DateKind]*regexp.Regexp{
		task.DateCreated:    regexp.MustCompile(`\[created::\s*(\d{4}-\d{2}-\d{2})\s*\]`),
		task.DateStart:      regexp.MustCompile(`\[start::\s*(\d{4}-\d{2}-\d{2})\s*\]`),
		task.DateScheduled:  regexp.MustCompile(`\[scheduled::\s*(\d{4}-\d{2}-\d{2})\s*\]`),
		task.DateDue:        regexp.MustCompile(`\[due::\s*(\d{4}-\d{2}-\d{2})\s*\]`),
		task.DateCancelled:  regexp.MustCompile(`\[cancelled::\s*(\d{4}-\d{2}-\d{2})\s*\]`),
		task.DateCompletion: regexp.MustCompile(`\[completion::\s*(\d{4}-\d{2}-\d{2})\s*\]`),
	},
	detectRe: regexp.MustCompile(`\[(?:priority|created|start|scheduled|due|cancelled|completion)::`),
}

func configFor(format task.Format) *formatConfig {
	if format == task.FormatDataview {
		return dataviewConfig
	}
	return emojiConfig
}

// DetectFormat classifies content by which enabled dialects' tokens it
// contains. Returns FormatMixed when both match, the matching dialect when
// exactly one does, and the empty Format when neither does. Detection uses
// cheap per-dialect patterns without running full extraction.
func DetectFormat(content string, enabled []task.Format) task.Format {
	hasEmoji := false
	hasDataview := false
	for _, f := range enabled {
		switch f {
		case task.FormatEmoji:
			hasEmoji = emojiConfig.detectRe.MatchString(content)
		case task.FormatDataview:
			hasDataview = dataviewConfig.detectRe.MatchString(content)
		}
	}

	switch {
	case hasEmoji && hasDataview:
		return task.FormatMixed
	case hasEmoji:
		return task.FormatEmoji
	case hasDataview:
		return task.FormatDataview
	default:
		return ""
	}
}

// PriorityToken returns the textual encoding of a priority level in the given
// dialect. PriorityNormal returns the empty string in both dialects.
func PriorityToken(p task.Priority, format task.Format) string {
	if p == task.PriorityNormal {
		return ""
	}
	if format == task.FormatDataview {
		return "[priority:: " + string(p) + "]"
	}
	return emojiPriorityGlyphs[p]
}

// DateToken returns the textual encoding of a date role and value in the
// given dialect.
func DateToken(kind task.DateKind, date string, format task.Format) string {
	if format == task.FormatDataview {
		return "[" + string(kind) + ":: " + date + "]"
	}
	return emojiDateGlyphs[kind] + " " + date
}

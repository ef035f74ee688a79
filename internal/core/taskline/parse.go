package taskline

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/status"
	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/task"
)

// tagRe matches hashtag labels: "#" followed by a letter, underscore, or CJK
// character, then any run of word or CJK characters. The leading alternation
// rejects matches starting inside a larger word ("foo#bar" is not a tag).
// Tags cannot start with a digit.
var tagRe = regexp.MustCompile(`(?:^|[^A-Za-z0-9_#\x{4e00}-\x{9fa5}])#([A-Za-z_\x{4e00}-\x{9fa5}][A-Za-z0-9_\x{4e00}-\x{9fa5}]*)`)

// whitespaceRe collapses whitespace runs when cleaning descriptions.
var whitespaceRe = regexp.MustCompile(`\s+`)

// ExtractTags returns the hashtag labels in content, in order of first
// occurrence, de-duplicated, without the leading "#".
func ExtractTags(content string) []string {
	matches := tagRe.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		tags = append(tags, name)
	}
	return tags
}

// stripTags removes every hashtag label (including the "#") from content.
func stripTags(content string) string {
	matches := tagRe.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content
	}

	var b strings.Builder
	b.Grow(len(content))
	prev := 0
	for _, m := range matches {
		// m[2]:m[3] is the tag name; the "#" sits one byte before it.
		start := m[2] - 1
		b.WriteString(content[prev:start])
		prev = m[3]
	}
	b.WriteString(content[prev:])
	return b.String()
}

// Attributes holds the typed fields extracted from a line's annotation tokens.
type Attributes struct {
	Priority task.Priority
	Dates    map[task.DateKind]time.Time
	// HasCancelledDate is set when a cancellation date was extracted.
	// Callers use it to force Cancelled even when the checkbox symbol does
	// not indicate cancellation.
	HasCancelledDate bool
}

// ExtractAttributes pulls priority and date fields out of content using the
// given dialect's patterns. FormatMixed extracts with the emoji dialect by
// convention. Date tokens whose value is not a real calendar date are dropped;
// extraction of the remaining fields continues.
func ExtractAttributes(content string, format task.Format) Attributes {
	attrs := Attributes{
		Priority: task.PriorityNormal,
		Dates:    make(map[task.DateKind]time.Time),
	}
	if format == "" {
		return attrs
	}

	cfg := configFor(format)

	if m := cfg.priorityRe.FindStringSubmatch(content); m != nil {
		if cfg.format == task.FormatDataview {
			if p := task.Priority(m[1]); p.Valid() {
				attrs.Priority = p
			}
		} else if p, ok := glyphToPriority[m[1]]; ok {
			attrs.Priority = p
		}
	}

	for _, kind := range task.DateKinds {
		m := cfg.dateRes[kind].FindStringSubmatch(content)
		if m == nil {
			continue
		}
		date, err := time.Parse(task.DateLayout, m[1])
		if err != nil {
			// Matched token with an invalid calendar date: drop the field.
			continue
		}
		attrs.Dates[kind] = date
		if kind == task.DateCancelled {
			attrs.HasCancelledDate = true
		}
	}

	return attrs
}

// CleanDescription strips every recognized annotation token and every hashtag
// label from content, collapses repeated whitespace, and trims. This is the
// text shown to the user. For mixed lines both dialects' tokens are stripped
// so no raw annotation leaks into the display text.
func CleanDescription(content string, format task.Format) string {
	switch format {
	case task.FormatMixed:
		content = stripTokens(content, emojiConfig)
		content = stripTokens(content, dataviewConfig)
	case task.FormatEmoji, task.FormatDataview:
		content = stripTokens(content, configFor(format))
	}

	content = stripTags(content)
	content = whitespaceRe.ReplaceAllString(content, " ")
	return strings.TrimSpace(content)
}

func stripTokens(content string, cfg *formatConfig) string {
	content = cfg.priorityRe.ReplaceAllString(content, "")
	for _, re := range cfg.dateRes {
		content = re.ReplaceAllString(content, "")
	}
	return content
}

// Options configure a single parse call. The zero value enables both dialects,
// applies no global filter, and resolves checkbox symbols against the default
// status registry.
type Options struct {
	// Formats are the enabled dialects. Nil enables both.
	Formats []task.Format
	// GlobalFilter gates line eligibility when non-empty.
	GlobalFilter string
	// Registry resolves checkbox symbols. Nil uses the default registry.
	Registry *status.Registry
}

var defaultFormats = []task.Format{task.FormatEmoji, task.FormatDataview}

var defaultRegistry = func() *status.Registry {
	r, err := status.NewRegistry(nil)
	if err != nil {
		panic(err)
	}
	return r
}()

func (o Options) enabled() []task.Format {
	if len(o.Formats) == 0 {
		return defaultFormats
	}
	return o.Formats
}

func (o Options) registry() *status.Registry {
	if o.Registry == nil {
		return defaultRegistry
	}
	return o.Registry
}

// Parse runs the full pipeline over one text line: checkbox recognition,
// global-filter gating, format detection, and attribute extraction. Returns
// (nil, false) when the line is not a task or fails the filter; neither case
// is an error.
func Parse(line, filePath string, lineNumber int, opts Options) (*task.Record, bool) {
	cb, ok := SplitCheckbox(line)
	if !ok {
		return nil, false
	}
	if !PassesFilter(cb.Content, opts.GlobalFilter) {
		return nil, false
	}
	content := StripFilter(cb.Content, opts.GlobalFilter)

	detected := DetectFormat(content, opts.enabled())
	attrs := ExtractAttributes(content, detected)

	rec := &task.Record{
		FilePath:    filePath,
		FileName:    filepath.Base(filePath),
		LineNumber:  lineNumber,
		Content:     content,
		Description: CleanDescription(content, detected),
		Status:      status.KeyTodo,
		Priority:    attrs.Priority,
		Tags:        ExtractTags(content),
	}

	// Mixed is a warning state, not a stored format: extraction used the
	// emoji dialect, so that is what the record carries.
	switch detected {
	case task.FormatMixed:
		rec.Format = task.FormatEmoji
	default:
		rec.Format = detected
	}

	if desc, found := opts.registry().BySymbol(cb.Symbol); found {
		rec.Status = desc.Key
		rec.Completed = desc.Key == status.KeyDone
		rec.Cancelled = desc.Key == status.KeyCanceled
	}

	for kind, date := range attrs.Dates {
		d := date
		rec.SetDate(kind, &d)
	}

	// A cancellation date marks the task cancelled even when the checkbox
	// symbol says otherwise, unless it is already completed.
	if attrs.HasCancelledDate && !rec.Completed {
		rec.Cancelled = true
	}

	switch {
	case detected == task.FormatMixed:
		rec.Warning = task.WarningMixedFormat
	case !rec.Scheduled():
		rec.Warning = task.WarningUnscheduled
	}

	return rec, true
}

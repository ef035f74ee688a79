// Package status defines the checkbox status registry that maps single-character
// task symbols to semantic status keys and display colors.
package status

import (
	"errors"
	"fmt"
	"strings"
)

// Key identifies a semantic task status.
type Key string

const (
	KeyTodo       Key = "todo"
	KeyDone       Key = "done"
	KeyImportant  Key = "important"
	KeyCanceled   Key = "canceled"
	KeyInProgress Key = "in_progress"
	KeyQuestion   Key = "question"
	KeyStart      Key = "start"
)

// MaxCustom is the maximum number of user-defined status descriptors.
const MaxCustom = 3

var (
	// ErrTooManyCustom is returned when more than MaxCustom custom statuses are registered.
	ErrTooManyCustom = errors.New("too many custom statuses")
	// ErrDuplicateSymbol is returned when two descriptors share a checkbox symbol.
	ErrDuplicateSymbol = errors.New("duplicate status symbol")
)

// Descriptor describes a single status entry: its key, the checkbox symbol that
// encodes it in text, and the colors used when rendering it.
type Descriptor struct {
	Key             Key    `json:"key" yaml:"key"`
	Symbol          string `json:"symbol" yaml:"symbol"`
	Name            string `json:"name" yaml:"name"`
	BackgroundColor string `json:"background_color" yaml:"background_color"`
	TextColor       string `json:"text_color" yaml:"text_color"`
	IsDefault       bool   `json:"is_default" yaml:"-"`
}

// Defaults returns the seven built-in status descriptors.
// The returned slice is a copy and safe to modify.
func Defaults() []Descriptor {
	return []Descriptor{
		{Key: KeyTodo, Symbol: " ", Name: "Todo", BackgroundColor: "#7aa2f7", TextColor: "#1a1b26", IsDefault: true},
		{Key: KeyDone, Symbol: "x", Name: "Done", BackgroundColor: "#9ece6a", TextColor: "#1a1b26", IsDefault: true},
		{Key: KeyImportant, Symbol: "!", Name: "Important", BackgroundColor: "#f7768e", TextColor: "#1a1b26", IsDefault: true},
		{Key: KeyCanceled, Symbol: "-", Name: "Canceled", BackgroundColor: "#565f89", TextColor: "#c0caf5", IsDefault: true},
		{Key: KeyInProgress, Symbol: "/", Name: "In Progress", BackgroundColor: "#e0af68", TextColor: "#1a1b26", IsDefault: true},
		{Key: KeyQuestion, Symbol: "?", Name: "Question", BackgroundColor: "#bb9af7", TextColor: "#1a1b26", IsDefault: true},
		{Key: KeyStart, Symbol: "n", Name: "Start", BackgroundColor: "#7dcfff", TextColor: "#1a1b26", IsDefault: true},
	}
}

// reservedSymbols are the default checkbox symbols that custom statuses may not reuse.
const reservedSymbols = " x!-/?n"

// excludedSymbols are characters that conflict with markdown or annotation syntax
// and are never valid as a status symbol for custom entries.
const excludedSymbols = `/|_$#^*`

// Registry resolves checkbox symbols and status keys to descriptors.
// Build one per settings change and pass it by reference; lookups are read-only.
type Registry struct {
	bySymbol map[string]Descriptor
	byKey    map[Key]Descriptor
	ordered  []Descriptor
}

// NewRegistry builds a registry from the default descriptors plus up to
// MaxCustom user-defined entries. Custom symbols are validated and must not
// collide with any already-registered symbol.
func NewRegistry(custom []Descriptor) (*Registry, error) {
	if len(custom) > MaxCustom {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyCustom, len(custom), MaxCustom)
	}

	r := &Registry{
		bySymbol: make(map[string]Descriptor),
		byKey:    make(map[Key]Descriptor),
	}

	for _, d := range Defaults() {
		r.add(d)
	}

	for _, d := range custom {
		if err := ValidateSymbol(d.Symbol, true); err != nil {
			return nil, fmt.Errorf("custom status %q: %w", d.Key, err)
		}
		if _, exists := r.bySymbol[d.Symbol]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, d.Symbol)
		}
		d.IsDefault = false
		r.add(d)
	}

	return r, nil
}

func (r *Registry) add(d Descriptor) {
	r.bySymbol[d.Symbol] = d
	r.byKey[d.Key] = d
	r.ordered = append(r.ordered, d)
}

// BySymbol returns the descriptor for a checkbox symbol.
// Uppercase "X" resolves to the same descriptor as "x".
func (r *Registry) BySymbol(symbol string) (Descriptor, bool) {
	d, ok := r.bySymbol[symbol]
	if !ok {
		d, ok = r.bySymbol[strings.ToLower(symbol)]
	}
	return d, ok
}

// ByKey returns the descriptor for a status key.
func (r *Registry) ByKey(key Key) (Descriptor, bool) {
	d, ok := r.byKey[key]
	return d, ok
}

// Colors returns the background and text color for a status key.
func (r *Registry) Colors(key Key) (bg, text string, ok bool) {
	d, found := r.byKey[key]
	if !found {
		return "", "", false
	}
	return d.BackgroundColor, d.TextColor, true
}

// Descriptors returns all registered descriptors in registration order,
// defaults first.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// ValidateSymbol checks whether a candidate checkbox symbol is acceptable.
// All symbols must be exactly one character. Custom symbols additionally must
// be alphanumeric, must not reuse a reserved default symbol, and must not use
// an excluded punctuation character.
func ValidateSymbol(symbol string, isCustom bool) error {
	runes := []rune(symbol)
	if len(runes) != 1 {
		return fmt.Errorf("symbol must be exactly one character, got %q", symbol)
	}
	ch := runes[0]

	if !isCustom {
		// Default symbols are allowed as-is.
		if strings.ContainsRune(reservedSymbols, ch) {
			return nil
		}
	}

	if isCustom && strings.ContainsRune(reservedSymbols, ch) {
		return fmt.Errorf("symbol %q is reserved for a built-in status", symbol)
	}
	if strings.ContainsRune(excludedSymbols, ch) {
		return fmt.Errorf("symbol %q conflicts with markdown syntax", symbol)
	}
	if !isAlphanumeric(ch) {
		return fmt.Errorf("symbol %q must be a letter or digit", symbol)
	}
	return nil
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

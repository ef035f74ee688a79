// Package vault provides line-oriented access to a markdown document
// collection. Reads and rewrites are whole-file: a single line is replaced in
// memory and the document is written back atomically, never partially.
package vault

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultInclude is the include pattern applied when none are configured.
var DefaultInclude = []string{"**/*.md"}

// Vault is a rooted markdown document collection.
type Vault struct {
	root    string
	include []string
	exclude []string
	log     zerolog.Logger
}

// New creates a vault rooted at root. Include and exclude are doublestar glob
// patterns matched against slash-separated paths relative to the root; an
// empty include list defaults to every markdown file.
func New(root string, include, exclude []string) *Vault {
	if len(include) == 0 {
		include = DefaultInclude
	}
	return &Vault{
		root:    root,
		include: include,
		exclude: exclude,
		log:     log.With().Str("component", "vault").Logger(),
	}
}

// Root returns the vault root directory.
func (v *Vault) Root() string { return v.root }

// Discover walks the vault and returns the sorted relative paths of documents
// matching the include patterns and not matching any exclude pattern.
// Dot-directories (.obsidian, .git) are skipped.
func (v *Vault) Discover(ctx context.Context) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(v.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		name := d.Name()
		if d.IsDir() {
			if path != v.root && strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(v.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !v.matches(rel) {
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover documents: %w", err)
	}

	sort.Strings(paths)
	return paths, nil
}

func (v *Vault) matches(rel string) bool {
	included := false
	for _, p := range v.include {
		if ok, _ := doublestar.Match(p, rel); ok {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, p := range v.exclude {
		if ok, _ := doublestar.Match(p, rel); ok {
			return false
		}
	}
	return true
}

// ReadLines returns the document's lines in order. The path is relative to
// the vault root.
func (v *Vault) ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(v.abs(path))
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}
	return strings.Split(string(data), "\n"), nil
}

// WriteLines replaces the document's contents with the given lines. The write
// goes through a temp file in the same directory and a rename, so readers
// never observe a half-written document.
func (v *Vault) WriteLines(path string, lines []string) error {
	abs := v.abs(path)

	tmp, err := os.CreateTemp(filepath.Dir(abs), ".ganttcal-*")
	if err != nil {
		return fmt.Errorf("write document %s: %w", path, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.WriteString(strings.Join(lines, "\n"))
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		_ = os.Remove(tmpName)
		if werr != nil {
			return fmt.Errorf("write document %s: %w", path, werr)
		}
		return fmt.Errorf("write document %s: %w", path, cerr)
	}

	if err := os.Rename(tmpName, abs); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write document %s: %w", path, err)
	}
	return nil
}

// UpdateLine rewrites a single 1-based line through fn, leaving every other
// line untouched. Returns a LineIndexError when the line number is outside
// the document's current bounds; any error from fn aborts without writing.
func (v *Vault) UpdateLine(path string, lineNumber int, fn func(line string) (string, error)) error {
	lines, err := v.ReadLines(path)
	if err != nil {
		return err
	}

	if lineNumber < 1 || lineNumber > len(lines) {
		return &LineIndexError{Path: path, Line: lineNumber, Max: len(lines)}
	}

	updated, err := fn(lines[lineNumber-1])
	if err != nil {
		return err
	}

	lines[lineNumber-1] = updated
	if err := v.WriteLines(path, lines); err != nil {
		return err
	}

	v.log.Debug().Str("path", path).Int("line", lineNumber).Msg("rewrote task line")
	return nil
}

func (v *Vault) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(v.root, filepath.FromSlash(path))
}

// Package gantt wires the parsing core to the vault: batch scanning of task
// records and read-modify-write updates of single task lines.
package gantt

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/task"
	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/taskline"
	"github.com/sustcsugar/obsidian-gantt-calendar-sub000/internal/core/vault"
)

// Service scans and updates task lines across a vault. Parsing is pure; the
// vault is the only shared resource, and each file is read-then-written by a
// single writer at a time.
type Service struct {
	vault   *vault.Vault
	opts    taskline.Options
	workers int
	log     zerolog.Logger
}

// NewService creates a task service. Workers bounds how many files are
// scanned concurrently; values below 1 are treated as 1.
func NewService(v *vault.Vault, opts taskline.Options, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		vault:   v,
		opts:    opts,
		workers: workers,
		log:     log.With().Str("component", "gantt").Logger(),
	}
}

// ScanAll parses every task line in every discovered document. Files are
// scanned concurrently; the returned records are sorted by
// (file name, line number) ascending regardless of scan order.
func (s *Service) ScanAll(ctx context.Context) ([]task.Record, error) {
	paths, err := s.vault.Discover(ctx)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		records []task.Record
		wg      sync.WaitGroup
		scanErr error
	)

	work := make(chan string)
	for range s.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range work {
				recs, err := s.ScanFile(ctx, path)

				mu.Lock()
				if err != nil && scanErr == nil {
					scanErr = err
				}
				records = append(records, recs...)
				mu.Unlock()
			}
		}()
	}

feed:
	for _, path := range paths {
		select {
		case work <- path:
		case <-ctx.Done():
			break feed
		}
	}
	close(work)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if scanErr != nil {
		return nil, scanErr
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].FileName != records[j].FileName {
			return records[i].FileName < records[j].FileName
		}
		return records[i].LineNumber < records[j].LineNumber
	})

	s.log.Debug().Int("files", len(paths)).Int("tasks", len(records)).Msg("scan complete")
	return records, nil
}

// ScanFile parses every task line of a single document. Non-task lines and
// lines failing the global filter are skipped silently.
func (s *Service) ScanFile(ctx context.Context, path string) ([]task.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines, err := s.vault.ReadLines(path)
	if err != nil {
		return nil, err
	}

	var records []task.Record
	for i, line := range lines {
		rec, ok := taskline.Parse(line, path, i+1, s.opts)
		if !ok {
			continue
		}
		records = append(records, *rec)
	}
	return records, nil
}

// Update applies an update set to the task at path:lineNumber and writes the
// re-serialized line back, preserving the original indentation and list
// marker. Returns the new line text (without the marker prefix).
//
// Fails with vault.LineIndexError when the line number is out of bounds and
// vault.MarkerError when the target no longer looks like a task line; both
// mean the document changed and the caller should re-scan before retrying.
func (s *Service) Update(ctx context.Context, path string, lineNumber int, up task.UpdateSet, format task.Format) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var serialized string
	err := s.vault.UpdateLine(path, lineNumber, func(line string) (string, error) {
		cb, ok := taskline.SplitCheckbox(line)
		if !ok {
			return "", &vault.MarkerError{Path: path, Line: lineNumber, Text: line}
		}

		existing, ok := taskline.Parse(line, path, lineNumber, s.opts)
		if !ok {
			// Recognized checkbox but gated out: the line is not in the task
			// universe, so a targeted update is a stale request.
			return "", &vault.MarkerError{Path: path, Line: lineNumber, Text: line}
		}

		serialized = taskline.Serialize(existing, up, format, s.opts.GlobalFilter, s.opts.Registry)
		return cb.Prefix + serialized, nil
	})
	if err != nil {
		return "", err
	}

	return serialized, nil
}

// ConvertFile re-serializes every task line of a document in the target
// dialect and writes the result back in one atomic rewrite. Returns the
// number of converted lines. Non-task lines pass through untouched.
func (s *Service) ConvertFile(ctx context.Context, path string, format task.Format) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	lines, err := s.vault.ReadLines(path)
	if err != nil {
		return 0, err
	}

	converted := 0
	for i, line := range lines {
		cb, ok := taskline.SplitCheckbox(line)
		if !ok {
			continue
		}
		rec, ok := taskline.Parse(line, path, i+1, s.opts)
		if !ok {
			continue
		}

		lines[i] = cb.Prefix + taskline.Serialize(rec, task.UpdateSet{}, format, s.opts.GlobalFilter, s.opts.Registry)
		converted++
	}

	if converted == 0 {
		return 0, nil
	}
	if err := s.vault.WriteLines(path, lines); err != nil {
		return 0, err
	}

	s.log.Debug().Str("path", path).Int("lines", converted).Str("format", string(format)).Msg("converted task lines")
	return converted, nil
}

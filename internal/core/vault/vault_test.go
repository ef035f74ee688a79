package vault

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "inbox.md", "")
	writeFile(t, root, "projects/alpha.md", "")
	writeFile(t, root, "projects/notes.txt", "")
	writeFile(t, root, "archive/old.md", "")
	writeFile(t, root, ".obsidian/workspace.md", "")
	writeFile(t, root, ".git/config.md", "")

	t.Run("default include picks up all markdown", func(t *testing.T) {
		v := New(root, nil, nil)

		paths, err := v.Discover(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"archive/old.md", "inbox.md", "projects/alpha.md"}, paths)
	})

	t.Run("exclude patterns filter results", func(t *testing.T) {
		v := New(root, nil, []string{"archive/**"})

		paths, err := v.Discover(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"inbox.md", "projects/alpha.md"}, paths)
	})

	t.Run("narrow include", func(t *testing.T) {
		v := New(root, []string{"projects/**/*.md"}, nil)

		paths, err := v.Discover(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"projects/alpha.md"}, paths)
	})

	t.Run("cancelled context aborts the walk", func(t *testing.T) {
		v := New(root, nil, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := v.Discover(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestReadWriteLines(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "doc.md", "alpha\nbeta\ngamma")

	v := New(root, nil, nil)

	lines, err := v.ReadLines("doc.md")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, lines)

	lines[1] = "BETA"
	require.NoError(t, v.WriteLines("doc.md", lines))

	data, err := os.ReadFile(filepath.Join(root, "doc.md"))
	require.NoError(t, err)
	assert.Equal(t, "alpha\nBETA\ngamma", string(data))

	t.Run("missing document", func(t *testing.T) {
		_, err := v.ReadLines("nope.md")
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestUpdateLine(t *testing.T) {
	newVault := func(t *testing.T) (*Vault, string) {
		root := t.TempDir()
		writeFile(t, root, "doc.md", "one\ntwo\nthree")
		return New(root, nil, nil), root
	}

	t.Run("rewrites only the targeted line", func(t *testing.T) {
		v, root := newVault(t)

		err := v.UpdateLine("doc.md", 2, func(line string) (string, error) {
			assert.Equal(t, "two", line)
			return "TWO", nil
		})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(root, "doc.md"))
		require.NoError(t, err)
		assert.Equal(t, "one\nTWO\nthree", string(data))
	})

	t.Run("out of range line", func(t *testing.T) {
		v, _ := newVault(t)

		err := v.UpdateLine("doc.md", 4, func(string) (string, error) { return "", nil })
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLineOutOfRange)

		var idxErr *LineIndexError
		require.ErrorAs(t, err, &idxErr)
		assert.Equal(t, 4, idxErr.Line)
		assert.Equal(t, 3, idxErr.Max)
	})

	t.Run("zero line number", func(t *testing.T) {
		v, _ := newVault(t)

		err := v.UpdateLine("doc.md", 0, func(string) (string, error) { return "", nil })
		assert.ErrorIs(t, err, ErrLineOutOfRange)
	})

	t.Run("fn error aborts without writing", func(t *testing.T) {
		v, root := newVault(t)
		boom := errors.New("boom")

		err := v.UpdateLine("doc.md", 1, func(string) (string, error) { return "", boom })
		assert.ErrorIs(t, err, boom)

		data, err := os.ReadFile(filepath.Join(root, "doc.md"))
		require.NoError(t, err)
		assert.Equal(t, "one\ntwo\nthree", string(data))
	})
}

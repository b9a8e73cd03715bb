package main

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// writeFiles creates each file (and its parent directories) below root.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func makeDirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0755))
	}
}

type aggregateRow struct {
	level  int
	column string
	count  uint64
	noun   string
}

// recordingPresenter captures what the engines hand to the presenter.
// fail, when set, rejects matching entries the way an unresolvable symlink
// would be rejected.
type recordingPresenter struct {
	entries    []EntryView
	absolute   []bool
	aggregates []aggregateRow
	fail       func(EntryView) bool
}

func (r *recordingPresenter) Entry(v EntryView, absolute bool) error {
	if r.fail != nil && r.fail(v) {
		return errors.New("cannot present " + v.Name)
	}
	r.entries = append(r.entries, v)
	r.absolute = append(r.absolute, absolute)
	return nil
}

func (r *recordingPresenter) Aggregate(level int, column string, count uint64, noun string) {
	r.aggregates = append(r.aggregates, aggregateRow{level, column, count, noun})
}

func (r *recordingPresenter) names() []string {
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.Name)
	}
	return names
}

func quietConsole() *console {
	return newConsole(io.Discard, false)
}

// brokenEntry is a directory entry whose metadata cannot be read.
type brokenEntry struct{ name string }

func (b brokenEntry) Name() string               { return b.name }
func (b brokenEntry) IsDir() bool                { return false }
func (b brokenEntry) Type() fs.FileMode          { return 0 }
func (b brokenEntry) Info() (fs.FileInfo, error) { return nil, errors.New("lstat " + b.name + ": no such file") }

// withBrokenEntry lists directories normally and adds one unreadable entry
// to dir.
func withBrokenEntry(dir, name string) dirLister {
	return func(path string) ([]fs.DirEntry, error) {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		if path == dir {
			entries = append(entries, brokenEntry{name: name})
		}
		return entries, nil
	}
}

// failingOn lists directories normally except for the given path.
func failingOn(dir string) dirLister {
	return func(path string) ([]fs.DirEntry, error) {
		if path == dir {
			return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
		}
		return os.ReadDir(path)
	}
}

// fakeInfo is a FileInfo with arbitrary mode bits.
type fakeInfo struct {
	name string
	mode fs.FileMode
	size int64
	mod  time.Time
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return f.size }
func (f fakeInfo) Mode() fs.FileMode  { return f.mode }
func (f fakeInfo) ModTime() time.Time { return f.mod }
func (f fakeInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fakeInfo) Sys() any           { return nil }

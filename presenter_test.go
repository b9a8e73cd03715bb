//go:build unix

package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPresenter(buf *bytes.Buffer, display DisplayFlags) *textPresenter {
	caps := Capabilities{Permissions: true, ModTime: true, SpecialKinds: true}
	return newTextPresenter(buf, &Config{Display: display}, caps, false)
}

func TestTextPresenter_FileRow(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPresenter(&buf, DisplayFlags{})

	err := p.Entry(EntryView{
		Path:  "/x/a.txt",
		Name:  "a.txt",
		Info:  fakeInfo{name: "a.txt", mode: 0644, size: 1234},
		Kind:  KindFile,
		Level: 1,
	}, false)

	require.NoError(t, err)
	assert.Equal(t, padLeft("1,234", 20)+"    "+"    "+"a.txt\n", buf.String())
}

func TestTextPresenter_DirectoryRows(t *testing.T) {
	tests := []struct {
		name    string
		size    *SizeResult
		wantCol string
	}{
		{"no size", nil, ""},
		{"size", &SizeResult{Bytes: 2048, OK: true}, "2,048"},
		{"size failed", &SizeResult{}, "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := newTestPresenter(&buf, DisplayFlags{})

			err := p.Entry(EntryView{
				Path:    "/x/sub",
				Name:    "sub",
				Info:    fakeInfo{name: "sub", mode: fs.ModeDir | 0755},
				Kind:    KindDir,
				DirSize: tt.size,
			}, false)

			require.NoError(t, err)
			assert.Equal(t, padLeft(tt.wantCol, 20)+"    <sub>\n", buf.String())
		})
	}
}

func TestTextPresenter_SpecialRow(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPresenter(&buf, DisplayFlags{})

	err := p.Entry(EntryView{
		Name:    "pipe",
		Info:    fakeInfo{name: "pipe", mode: fs.ModeNamedPipe | 0644},
		Kind:    KindSpecial,
		Special: SpecialFifo,
	}, false)

	require.NoError(t, err)
	assert.Equal(t, padLeft("FIFO PIPE", 20)+"    pipe\n", buf.String())
}

func TestTextPresenter_MetadataColumns(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPresenter(&buf, DisplayFlags{Permissions: true, ModTime: true})
	mod := time.Date(2024, time.January, 2, 15, 4, 0, 0, time.Local)

	err := p.Entry(EntryView{
		Name: "run.sh",
		Info: fakeInfo{name: "run.sh", mode: 0754, size: 10, mod: mod},
		Kind: KindFile,
	}, false)

	require.NoError(t, err)
	want := "rwxr-xr--" + "   " + timeString(mod) + padLeft("10", 20) + "    run.sh\n"
	assert.Equal(t, want, buf.String())
}

func TestTextPresenter_MetadataColumnsNeedCapabilities(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Display: DisplayFlags{Permissions: true, ModTime: true}}
	p := newTextPresenter(&buf, cfg, Capabilities{}, false)

	require.NoError(t, p.Entry(EntryView{
		Name: "a",
		Info: fakeInfo{name: "a", mode: 0644, size: 1},
		Kind: KindFile,
	}, false))

	assert.Equal(t, padLeft("1", 20)+"    a\n", buf.String())
}

func TestTextPresenter_AbsoluteRowUsesCanonicalPath(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPresenter(&buf, DisplayFlags{})
	p.resolve = func(path string) (string, error) { return "/canonical" + path, nil }

	err := p.Entry(EntryView{
		Path:  "/x/a.txt",
		Name:  "a.txt",
		Info:  fakeInfo{name: "a.txt", mode: 0644, size: 1},
		Kind:  KindFile,
		Level: 3,
	}, true)

	require.NoError(t, err)
	// No indentation in the absolute layout.
	assert.Equal(t, padLeft("1", 20)+"    /canonical/x/a.txt\n", buf.String())
}

func TestTextPresenter_AbsoluteRowFailsWhenPathCannotResolve(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPresenter(&buf, DisplayFlags{})
	p.resolve = func(string) (string, error) { return "", errors.New("gone") }

	err := p.Entry(EntryView{
		Path: "/x/a.txt",
		Name: "a.txt",
		Info: fakeInfo{name: "a.txt", mode: 0644},
		Kind: KindFile,
	}, true)

	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestTextPresenter_EmptyNameIsAnError(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPresenter(&buf, DisplayFlags{})

	err := p.Entry(EntryView{Info: fakeInfo{mode: 0644}, Kind: KindFile}, false)

	assert.ErrorIs(t, err, errNoName)
	assert.Empty(t, buf.String())
}

func TestTextPresenter_SymlinkRows(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"target.txt": "x"})
	makeDirs(t, dir, "target-dir")
	require.NoError(t, os.Symlink(filepath.Join(dir, "target.txt"), filepath.Join(dir, "to-file")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "target-dir"), filepath.Join(dir, "to-dir")))

	fileTarget, err := canonicalPath(filepath.Join(dir, "target.txt"))
	require.NoError(t, err)
	dirTarget, err := canonicalPath(filepath.Join(dir, "target-dir"))
	require.NoError(t, err)

	render := func(name string) string {
		var buf bytes.Buffer
		p := newTestPresenter(&buf, DisplayFlags{})
		path := filepath.Join(dir, name)
		info, err := os.Lstat(path)
		require.NoError(t, err)
		require.NoError(t, p.Entry(EntryView{Path: path, Name: name, Info: info, Kind: KindSymlink}, false))
		return buf.String()
	}

	assert.Equal(t, padLeft("SYMLINK", 20)+"    to-file -> "+fileTarget+"\n", render("to-file"))
	assert.Equal(t, padLeft("SYMLINK", 20)+"    <to-dir> -> <"+dirTarget+">\n", render("to-dir"))
}

func TestTextPresenter_AbsoluteSymlinkKeepsItsOwnPath(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"target.txt": "x"})
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(filepath.Join(dir, "target.txt"), link))
	info, err := os.Lstat(link)
	require.NoError(t, err)

	var buf bytes.Buffer
	p := newTestPresenter(&buf, DisplayFlags{})
	require.NoError(t, p.Entry(EntryView{Path: link, Name: "link", Info: info, Kind: KindSymlink}, true))

	abs, err := filepath.Abs(link)
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "    "+abs+" -> "), buf.String())
}

func TestTextPresenter_DanglingSymlinkIsAnError(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), link))
	info, err := os.Lstat(link)
	require.NoError(t, err)

	var buf bytes.Buffer
	p := newTestPresenter(&buf, DisplayFlags{})

	err = p.Entry(EntryView{Path: link, Name: "dangling", Info: info, Kind: KindSymlink}, false)

	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestTextPresenter_Aggregate(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPresenter(&buf, DisplayFlags{})

	p.Aggregate(1, "-", 1234, "symlinks")

	assert.Equal(t, padLeft("-", 20)+"    "+"    "+"<1,234 symlinks>\n", buf.String())
}

func TestTextPresenter_AggregateBlanksMetadataColumns(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPresenter(&buf, DisplayFlags{Permissions: true, ModTime: true})

	p.Aggregate(0, "", 3, "files")

	want := strings.Repeat(" ", 12) + strings.Repeat(" ", 20) + strings.Repeat(" ", 20) + "    <3 files>\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestTextPresenter_AggregateIgnoresWriteErrors(t *testing.T) {
	cfg := &Config{}
	p := newTextPresenter(failingWriter{}, cfg, Capabilities{}, false)

	assert.NotPanics(t, func() { p.Aggregate(0, "", 1, "files") })
}

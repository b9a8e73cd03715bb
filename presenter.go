package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Presenter renders listing rows. Entry returns an error when the entry's
// identity cannot be resolved for display; nothing is written in that case.
type Presenter interface {
	Entry(v EntryView, absolute bool) error
	Aggregate(level int, column string, count uint64, noun string)
}

var errNoName = errors.New("entry has no displayable name")

// textPresenter writes fixed-width text rows.
type textPresenter struct {
	w        io.Writer
	showPerm bool
	showTime bool
	colors   bool

	// resolve returns the canonical absolute path with every symlink
	// evaluated; stat follows symlinks. Both are swapped out in tests.
	resolve func(string) (string, error)
	stat    func(string) (os.FileInfo, error)

	dirColor     *color.Color
	linkColor    *color.Color
	specialColor *color.Color
	errColor     *color.Color
}

func newTextPresenter(w io.Writer, cfg *Config, caps Capabilities, colors bool) *textPresenter {
	return &textPresenter{
		w:            w,
		showPerm:     cfg.Display.Permissions && caps.Permissions,
		showTime:     cfg.Display.ModTime && caps.ModTime,
		colors:       colors,
		resolve:      canonicalPath,
		stat:         os.Stat,
		dirColor:     color.New(color.FgBlue, color.Bold),
		linkColor:    color.New(color.FgCyan),
		specialColor: color.New(color.FgYellow),
		errColor:     color.New(color.FgRed),
	}
}

// canonicalPath resolves every symlink in p and makes the result absolute.
func canonicalPath(p string) (string, error) {
	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

func (p *textPresenter) Entry(v EntryView, absolute bool) error {
	name, err := p.displayName(v, absolute)
	if err != nil {
		return err
	}

	var column string
	var paint *color.Color
	switch v.Kind {
	case KindFile:
		column = formatCount(v.Info.Size())
	case KindDir:
		name = "<" + name + ">"
		paint = p.dirColor
		if v.DirSize != nil {
			if v.DirSize.OK {
				column = formatCount(v.DirSize.Bytes)
			} else {
				column = "ERROR"
				paint = p.errColor
			}
		}
	case KindSymlink:
		column = "SYMLINK"
		paint = p.linkColor
		target, err := p.resolve(v.Path)
		if err != nil {
			return fmt.Errorf("reading target of symlink %q: %w", v.Path, err)
		}
		if fi, err := p.stat(v.Path); err == nil && fi.IsDir() {
			name = "<" + name + "> -> <" + target + ">"
		} else {
			name = name + " -> " + target
		}
	case KindSpecial:
		column = v.Special.Label()
		paint = p.specialColor
	}

	var b strings.Builder
	if p.showPerm {
		b.WriteString(permString(v.Info.Mode()))
		b.WriteString(permGap)
	}
	if p.showTime {
		b.WriteString(timeString(v.Info.ModTime()))
	}
	b.WriteString(p.paint(paint, padLeft(column, columnWidth)))
	b.WriteString(columnGap)
	if !absolute {
		b.WriteString(indent(v.Level))
	}
	b.WriteString(name)
	b.WriteByte('\n')

	_, err = io.WriteString(p.w, b.String())
	return err
}

// displayName picks the base name for indented rows and the absolute path
// for absolute rows. Symlinks keep their own path rather than the target's.
func (p *textPresenter) displayName(v EntryView, absolute bool) (string, error) {
	if !absolute {
		if v.Name == "" {
			return "", errNoName
		}
		return v.Name, nil
	}
	if v.Kind == KindSymlink {
		return filepath.Abs(v.Path)
	}
	return p.resolve(v.Path)
}

// Aggregate writes a "<N noun>" row standing in for entries that were not
// listed individually. The metadata columns are left blank.
func (p *textPresenter) Aggregate(level int, column string, count uint64, noun string) {
	var b strings.Builder
	if p.showPerm {
		b.WriteString(strings.Repeat(" ", len(modeTriplets[0])*3+len(permGap)))
	}
	if p.showTime {
		b.WriteString(strings.Repeat(" ", timeWidth))
	}
	b.WriteString(padLeft(column, columnWidth))
	b.WriteString(columnGap)
	b.WriteString(indent(level))
	fmt.Fprintf(&b, "<%s %s>\n", formatCount(count), noun)
	_, _ = io.WriteString(p.w, b.String())
}

func (p *textPresenter) paint(c *color.Color, s string) string {
	if !p.colors || c == nil {
		return s
	}
	return c.Sprint(s)
}

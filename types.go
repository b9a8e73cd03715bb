package main

import "io/fs"

// Kind is the classified type of a filesystem entry.
type Kind int

const (
	KindFile Kind = iota
	KindSymlink
	KindSpecial
	KindDir
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindSymlink:
		return "symlink"
	case KindSpecial:
		return "special"
	case KindDir:
		return "directory"
	default:
		return "unknown"
	}
}

// SpecialKind narrows KindSpecial down to the OS object behind it.
// Platforms that cannot tell them apart always report SpecialNA.
type SpecialKind int

const (
	SpecialNA SpecialKind = iota
	SpecialSocket
	SpecialBlockDevice
	SpecialCharDevice
	SpecialFifo
)

// Label is the text shown in the size column for a listed special entry.
func (s SpecialKind) Label() string {
	switch s {
	case SpecialSocket:
		return "SOCKET"
	case SpecialBlockDevice:
		return "BLOCK DEVICE"
	case SpecialCharDevice:
		return "CHAR DEVICE"
	case SpecialFifo:
		return "FIFO PIPE"
	default:
		return "SPECIAL"
	}
}

// SizeResult is the outcome of a recursive directory size computation.
// OK is false when any directory below the root could not be listed.
type SizeResult struct {
	Bytes int64
	OK    bool
}

// EntryView holds everything the presenter needs to render one entry.
type EntryView struct {
	Path    string      // path as listed (parent joined with name)
	Name    string      // base name
	Info    fs.FileInfo // lstat metadata
	Kind    Kind
	Special SpecialKind
	Level   int         // nesting level, 0 for children of the root
	DirSize *SizeResult // set for directories when sizes are enabled
}

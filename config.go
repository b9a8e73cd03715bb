package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxPathLen bounds the root path argument; anything longer is cut.
const maxPathLen = 256

// SearchMode selects how entry names are matched against the pattern.
type SearchMode int

const (
	SearchNone SearchMode = iota
	SearchExact
	SearchStem
	SearchContains
)

func (m SearchMode) String() string {
	switch m {
	case SearchExact:
		return "exact"
	case SearchStem:
		return "stem-exact"
	case SearchContains:
		return "substring"
	default:
		return "none"
	}
}

// DisplayFlags are the boolean presentation switches.
type DisplayFlags struct {
	Permissions bool
	ModTime     bool
	AbsNoIndent bool
	Files       bool
	Symlinks    bool
	Special     bool
	DirSize     bool
	Errors      bool
}

// Config is the resolved run configuration. It is built once before the
// traversal starts and only read afterwards.
type Config struct {
	Root      string
	Pattern   string
	Mode      SearchMode
	Recursive bool
	MaxDepth  int // 0 means unlimited
	Display   DisplayFlags

	RespectGitignore bool
}

// shows reports whether entries of kind k are listed individually.
// Directories always are.
func (c *Config) shows(k Kind) bool {
	switch k {
	case KindFile:
		return c.Display.Files
	case KindSymlink:
		return c.Display.Symlinks
	case KindSpecial:
		return c.Display.Special
	default:
		return true
	}
}

// descend reports whether a directory at the given level may be entered.
func (c *Config) descend(level int) bool {
	return c.Recursive && (c.MaxDepth == 0 || level < c.MaxDepth)
}

// unlimitedDepth is what --recursive means when given without a value.
const unlimitedDepth = "unlimited"

// parseRecursion interprets the raw --recursive value. An empty value leaves
// recursion off. A value that is not a positive integer also leaves it off
// and yields a warning for the user.
func parseRecursion(raw string) (enabled bool, depth int, warning string) {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "", "false":
		return false, 0, ""
	case unlimitedDepth, "true":
		return true, 0, ""
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, 0, fmt.Sprintf("could not convert \"%s\" to an integer, ignoring recursive option", raw)
	}
	if n <= 0 {
		return false, 0, "maximum recursion depth must be greater than 0, ignoring recursive option"
	}
	return true, int(n), ""
}

// truncatePath cuts p to at most max bytes without splitting a character.
func truncatePath(p string, max int) string {
	if len(p) <= max {
		return p
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(p[cut]) {
		cut--
	}
	return p[:cut]
}

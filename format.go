package main

import (
	"io/fs"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// columnWidth is the width of the right-aligned size/type column.
	columnWidth = 20
	// timeWidth is the width of the modification time column.
	timeWidth = 20
	// indentWidth is the extra indentation per nesting level.
	indentWidth = 4
	// columnGap separates the size/type column from the name.
	columnGap = "    "
	// permGap follows the permission triplets.
	permGap = "   "

	timeLayout = "Jan 02 2006  15:04"
)

var modeTriplets = [8]string{"---", "--x", "-w-", "-wx", "r--", "r-x", "rw-", "rwx"}

var numberPrinter = message.NewPrinter(language.English)

// formatCount renders n with comma thousands separators.
func formatCount[T int64 | uint64 | int](n T) string {
	return numberPrinter.Sprintf("%d", n)
}

// permString renders the owner, group and other permission triplets.
func permString(mode fs.FileMode) string {
	perm := uint32(mode.Perm())
	return modeTriplets[(perm>>6)&7] + modeTriplets[(perm>>3)&7] + modeTriplets[perm&7]
}

// timeString renders a modification time in local time, right-aligned.
func timeString(t time.Time) string {
	return padLeft(t.Local().Format(timeLayout), timeWidth)
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func indent(level int) string {
	return strings.Repeat(" ", indentWidth*level)
}

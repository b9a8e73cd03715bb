package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// console writes warnings and traversal errors to the error stream.
// Warnings are always printed; errors only when showErrors is set.
type console struct {
	w          io.Writer
	showErrors bool
	warnTag    string
	errTag     string
}

func newConsole(w io.Writer, showErrors bool) *console {
	c := &console{
		w:          w,
		showErrors: showErrors,
		warnTag:    "Warning:",
		errTag:     "Error",
	}
	if isTerminal(w) {
		c.warnTag = color.New(color.FgYellow).Sprint(c.warnTag)
		c.errTag = color.New(color.FgRed, color.Bold).Sprint(c.errTag)
	}
	return c
}

// isTerminal reports whether w is a terminal that should get coloured output.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *console) Warnf(format string, args ...any) {
	fmt.Fprintf(c.w, "%s %s\n", c.warnTag, fmt.Sprintf(format, args...))
}

// Errorf reports a recoverable error when error display is on. The cause
// goes on its own line, as the message already carries the path context.
func (c *console) Errorf(err error, format string, args ...any) {
	if !c.showErrors {
		return
	}
	c.Failf(err, format, args...)
}

// Failf reports an error regardless of the error display setting.
func (c *console) Failf(err error, format string, args ...any) {
	fmt.Fprintf(c.w, "%s %s\n", c.errTag, fmt.Sprintf(format, args...))
	if err != nil {
		fmt.Fprintf(c.w, "%v\n", err)
	}
}

package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// writeClipboard is replaced in tests so they do not touch the real clipboard.
var writeClipboard = clipboard.WriteAll

// outputSink decides where the listing goes. Without a PDF path or the
// clipboard option it writes straight through to stdout; otherwise the
// listing is captured and delivered by Close.
type outputSink struct {
	stdout    io.Writer
	buf       *bytes.Buffer
	pdfPath   string
	clipboard bool
	title     string
}

func newOutputSink(stdout io.Writer, pdfPath string, toClipboard bool, title string) *outputSink {
	s := &outputSink{
		stdout:    stdout,
		pdfPath:   pdfPath,
		clipboard: toClipboard,
		title:     title,
	}
	if s.captures() {
		s.buf = new(bytes.Buffer)
	}
	return s
}

func (s *outputSink) captures() bool {
	return s.pdfPath != "" || s.clipboard
}

// Writer is where the engines write rows and summaries.
func (s *outputSink) Writer() io.Writer {
	if s.buf != nil {
		return s.buf
	}
	return s.stdout
}

// Colors reports whether rows may carry terminal colours.
func (s *outputSink) Colors() bool {
	return !s.captures() && isTerminal(s.stdout)
}

// Close delivers a captured listing. The PDF takes priority over the
// clipboard; if the clipboard cannot be written the listing is printed
// instead so it is not lost.
func (s *outputSink) Close() error {
	if s.buf == nil {
		return nil
	}

	if s.pdfPath != "" {
		if err := generatePDF(s.buf.String(), s.title, s.pdfPath); err != nil {
			return err
		}
		fmt.Fprintf(s.stdout, "Listing saved to %s\n", s.pdfPath)
		return nil
	}

	if err := writeClipboard(s.buf.String()); err != nil {
		fmt.Fprintln(s.stdout, "--- Output (clipboard failed) ---")
		_, _ = s.buf.WriteTo(s.stdout)
		return fmt.Errorf("error writing to clipboard: %w", err)
	}
	fmt.Fprintln(s.stdout, "Output copied to clipboard.")
	return nil
}

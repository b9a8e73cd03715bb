package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// writeCounterBlock prints a titled block of per-kind counts followed by a
// blank line.
func writeCounterBlock(w io.Writer, title string, c *EntryCounter) {
	fmt.Fprintf(w, "%s\n<%s files>\n<%s symlinks>\n<%s special files>\n<%s subdirectories>\n<%s total entries>\n\n",
		title,
		formatCount(c.Files),
		formatCount(c.Symlinks),
		formatCount(c.Special),
		formatCount(c.Dirs),
		formatCount(c.Total()),
	)
}

// writeScanSummary prints the top-level summary and, for recursive scans,
// the summary including subdirectories.
func writeScanSummary(w io.Writer, label string, recursive bool, t *ScanTotals) {
	fmt.Fprintln(w)
	writeCounterBlock(w, fmt.Sprintf("Summary of \"%s\"", label), &t.TopLevel)
	if recursive {
		writeCounterBlock(w, "Including subdirectories", &t.Full)
	}
}

func writeSearchSummary(w io.Writer, label string, t *SearchTotals) {
	fmt.Fprintln(w)
	writeCounterBlock(w, "Summary of matching entries", &t.Matches)
	writeCounterBlock(w, fmt.Sprintf("Summary of traversal of \"%s\"", label), &t.Traversed)
}

// counterReport is the serialised form of an EntryCounter.
type counterReport struct {
	Files       uint64 `yaml:"files"`
	Symlinks    uint64 `yaml:"symlinks"`
	Special     uint64 `yaml:"special"`
	Directories uint64 `yaml:"directories"`
	Total       uint64 `yaml:"total"`
}

func newCounterReport(c *EntryCounter) *counterReport {
	return &counterReport{
		Files:       c.Files,
		Symlinks:    c.Symlinks,
		Special:     c.Special,
		Directories: c.Dirs,
		Total:       c.Total(),
	}
}

// Report is the machine-readable summary written by --summary-file.
type Report struct {
	Root      string `yaml:"root"`
	Mode      string `yaml:"mode"`
	Pattern   string `yaml:"pattern,omitempty"`
	Recursive bool   `yaml:"recursive"`
	MaxDepth  int    `yaml:"max_depth,omitempty"`

	TopLevel  *counterReport `yaml:"top_level,omitempty"`
	Full      *counterReport `yaml:"including_subdirectories,omitempty"`
	Matches   *counterReport `yaml:"matches,omitempty"`
	Traversed *counterReport `yaml:"traversed,omitempty"`
}

func newScanReport(cfg *Config, label string, t *ScanTotals) *Report {
	r := &Report{
		Root:      label,
		Mode:      "scan",
		Recursive: cfg.Recursive,
		MaxDepth:  cfg.MaxDepth,
		TopLevel:  newCounterReport(&t.TopLevel),
	}
	if cfg.Recursive {
		r.Full = newCounterReport(&t.Full)
	}
	return r
}

func newSearchReport(cfg *Config, label string, t *SearchTotals) *Report {
	return &Report{
		Root:      label,
		Mode:      "search:" + cfg.Mode.String(),
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
		MaxDepth:  cfg.MaxDepth,
		Matches:   newCounterReport(&t.Matches),
		Traversed: newCounterReport(&t.Traversed),
	}
}

// writeReportFile saves the report as YAML.
func writeReportFile(path string, r *Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("error encoding summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing summary to %s: %w", path, err)
	}
	return nil
}

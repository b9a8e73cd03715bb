package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// collectDirCandidates lists start and every directory below it that can be
// offered as a scan root. Hidden directories are not descended into.
func collectDirCandidates(start string) ([]string, error) {
	candidates := []string{}
	err := filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directories are simply not offered.
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != start && isHidden(d.Name()) {
			return fs.SkipDir
		}
		candidates = append(candidates, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning for directories: %w", err)
	}
	return candidates, nil
}

// isHidden checks if a base name is hidden (starts with '.').
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return len(name) > 0 && name[0] == '.'
}

// runInteractiveFinder lets the user pick the scan root with a fuzzy finder.
// It returns "" with a nil error when the user aborts.
func runInteractiveFinder(start string) (string, error) {
	candidates, err := collectDirCandidates(start)
	if err != nil {
		return "", err
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string {
			return candidates[i]
		},
		fuzzyfinder.WithPromptString("root> "),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Select the directory to scan. Press Enter to confirm."
			}
			return previewDir(candidates[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", fmt.Errorf("fuzzy finder error: %w", err)
	}

	return candidates[idx], nil
}

// previewDir describes the immediate children of a candidate directory.
func previewDir(path string) string {
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Sprintf("Path: %s\nError reading directory: %v", path, err)
	}

	var counts EntryCounter
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		kind, _ := Classify(info, hostCapabilities())
		counts.Inc(kind, 1)
	}
	return fmt.Sprintf("Path: %s\nFiles: %s\nSymlinks: %s\nSpecial: %s\nDirectories: %s",
		path,
		formatCount(counts.Files),
		formatCount(counts.Symlinks),
		formatCount(counts.Special),
		formatCount(counts.Dirs),
	)
}

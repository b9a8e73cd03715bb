package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	gitignore "github.com/monochromegane/go-gitignore"
)

// ignoreFilter decides whether a path is excluded from the traversal.
type ignoreFilter interface {
	Match(path string, isDir bool) bool
}

// loadGitignore builds a matcher from the .gitignore at the root of the scan.
// It returns a nil filter when the root has no .gitignore.
//
// Only the root file is consulted; nested .gitignore files are not merged.
func loadGitignore(root string) (ignoreFilter, error) {
	gitIgnorePath := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gitIgnorePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error accessing %s: %w", gitIgnorePath, err)
	}

	// Patterns are anchored at the root so Match can take the listed paths
	// as they are.
	matcher, err := gitignore.NewGitIgnore(gitIgnorePath, root)
	if err != nil {
		return nil, fmt.Errorf("could not parse .gitignore file %s: %w", gitIgnorePath, err)
	}
	return matcher, nil
}

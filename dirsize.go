package main

import (
	"io/fs"
	"os"
	"path/filepath"
)

// dirLister reads the entries of a directory. Tests substitute it to inject
// entries whose metadata cannot be read.
type dirLister func(name string) ([]fs.DirEntry, error)

// SizeCalculator sums the sizes of regular files below a directory.
type SizeCalculator struct {
	readDir dirLister
	log     *console
}

func newSizeCalculator(readDir dirLister, log *console) *SizeCalculator {
	if readDir == nil {
		readDir = os.ReadDir
	}
	return &SizeCalculator{readDir: readDir, log: log}
}

// ComputeSize returns the total size of the regular files below dir.
// Symlinks are never followed. Entries without readable metadata are
// skipped, but a directory that cannot be listed makes the whole result
// unknown. root is only used to give error messages context.
func (s *SizeCalculator) ComputeSize(root, dir string) SizeResult {
	entries, err := s.readDir(dir)
	if err != nil {
		if s.log != nil {
			s.log.Errorf(err, "while traversing %s while calculating size of directory %s", dir, root)
		}
		return SizeResult{}
	}

	var total int64
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}

		mode := info.Mode()
		switch {
		case mode&fs.ModeSymlink != 0:
			continue
		case mode.IsRegular():
			total += info.Size()
		case mode.IsDir():
			sub := s.ComputeSize(root, filepath.Join(dir, entry.Name()))
			if !sub.OK {
				return SizeResult{}
			}
			total += sub.Bytes
		}
	}

	return SizeResult{Bytes: total, OK: true}
}

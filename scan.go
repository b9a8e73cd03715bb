package main

import (
	"io/fs"
	"os"
	"path/filepath"
)

// engine holds what the scan and search traversals share.
type engine struct {
	cfg     *Config
	caps    Capabilities
	out     Presenter
	sizer   *SizeCalculator
	log     *console
	readDir dirLister
	ignore  ignoreFilter
}

func newEngine(cfg *Config, caps Capabilities, out Presenter, log *console) engine {
	return engine{
		cfg:     cfg,
		caps:    caps,
		out:     out,
		sizer:   newSizeCalculator(os.ReadDir, log),
		log:     log,
		readDir: os.ReadDir,
	}
}

// visited is one listed entry with readable metadata.
type visited struct {
	path    string
	info    fs.FileInfo
	kind    Kind
	special SpecialKind
}

// entries lists dir and classifies every child. Children whose metadata
// cannot be read, and children excluded by the ignore filter, are dropped.
func (e *engine) entries(dir string) ([]visited, error) {
	list, err := e.readDir(dir)
	if err != nil {
		return nil, err
	}

	out := make([]visited, 0, len(list))
	for _, entry := range list {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		kind, special := Classify(info, e.caps)
		if e.ignore != nil && e.ignore.Match(path, kind == KindDir) {
			continue
		}
		out = append(out, visited{path: path, info: info, kind: kind, special: special})
	}
	return out, nil
}

// view builds the presenter input for an entry, computing the directory
// size when sizes are enabled.
func (e *engine) view(v visited, level int) EntryView {
	ev := EntryView{
		Path:    v.path,
		Name:    v.info.Name(),
		Info:    v.info,
		Kind:    v.kind,
		Special: v.special,
		Level:   level,
	}
	if v.kind == KindDir && e.cfg.Display.DirSize {
		size := e.sizer.ComputeSize(v.path, v.path)
		ev.DirSize = &size
	}
	return ev
}

// ScanTotals are the counters accumulated by a scan.
type ScanTotals struct {
	TopLevel EntryCounter // children of the root only
	Full     EntryCounter // every level that was visited
}

// ScanEngine lists a directory tree, summarising the kinds that are not
// listed individually.
type ScanEngine struct {
	engine
}

func NewScanEngine(cfg *Config, caps Capabilities, out Presenter, log *console) *ScanEngine {
	return &ScanEngine{engine: newEngine(cfg, caps, out, log)}
}

// Run scans the configured root. The error is non-nil only when the root
// itself cannot be listed; failures further down are logged and skipped.
func (s *ScanEngine) Run() (ScanTotals, error) {
	var totals ScanTotals
	err := s.scanDir(s.cfg.Root, 0, &totals.TopLevel, &totals.Full)
	return totals, err
}

func (s *ScanEngine) scanDir(dir string, level int, top, full *EntryCounter) error {
	entries, err := s.entries(dir)
	if err != nil {
		return err
	}

	absolute := s.cfg.Display.AbsNoIndent
	cur := NewEntryCounter()
	var hiddenBytes int64

	for _, v := range entries {
		// Counted before the visibility check so the aggregate rows stay
		// correct when the kind is not listed.
		cur.Inc(v.kind, 1)

		if !s.cfg.shows(v.kind) {
			if v.kind == KindFile {
				hiddenBytes += v.info.Size()
			}
			continue
		}

		if err := s.out.Entry(s.view(v, level), absolute); err != nil {
			cur.Dec(v.kind, 1)
			continue
		}

		if v.kind == KindDir && s.cfg.descend(level) {
			if err := s.scanDir(v.path, level+1, top, full); err != nil {
				s.log.Errorf(err, "while iterating over \"%s\"", v.path)
			}
		}
	}

	if !absolute {
		s.aggregate(level, cur, hiddenBytes)
	}

	full.Merge(cur)
	if level == 0 {
		top.Merge(cur)
	}
	return nil
}

// aggregate writes the "<N kind>" rows for kinds that were not listed.
// With directory sizes on, the file row carries the hidden bytes and the
// others a dash, so the size column never looks empty.
func (s *ScanEngine) aggregate(level int, cur *EntryCounter, hiddenBytes int64) {
	fileCol, otherCol := "", ""
	if s.cfg.Display.DirSize {
		fileCol, otherCol = formatCount(hiddenBytes), "-"
	}

	if !s.cfg.Display.Files && cur.Files != 0 {
		s.out.Aggregate(level, fileCol, cur.Files, "files")
	}
	if !s.cfg.Display.Symlinks && cur.Symlinks != 0 {
		s.out.Aggregate(level, otherCol, cur.Symlinks, "symlinks")
	}
	if !s.cfg.Display.Special && cur.Special != 0 {
		s.out.Aggregate(level, otherCol, cur.Special, "special entries")
	}
}

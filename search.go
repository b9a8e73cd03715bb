package main

import "strings"

// Matcher reports whether an entry name satisfies the search.
type Matcher func(name string) bool

// newMatcher builds the name predicate for a search mode.
func newMatcher(mode SearchMode, pattern string) Matcher {
	switch mode {
	case SearchExact:
		return func(name string) bool { return name == pattern }
	case SearchStem:
		return func(name string) bool { return fileStem(name) == pattern }
	case SearchContains:
		return func(name string) bool { return strings.Contains(name, pattern) }
	default:
		return func(string) bool { return true }
	}
}

// fileStem strips the last extension from name. A leading dot does not start
// an extension, so ".bashrc" is its own stem.
func fileStem(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name
	}
	return name[:i]
}

// SearchTotals are the counters accumulated by a search.
type SearchTotals struct {
	Matches   EntryCounter // matched and listed
	Traversed EntryCounter // every entry looked at
}

// SearchEngine walks the tree like ScanEngine but only lists entries whose
// name matches. Rows always use the absolute layout and no aggregate rows
// are written.
type SearchEngine struct {
	engine
	match Matcher
}

func NewSearchEngine(cfg *Config, caps Capabilities, out Presenter, log *console) *SearchEngine {
	return &SearchEngine{
		engine: newEngine(cfg, caps, out, log),
		match:  newMatcher(cfg.Mode, cfg.Pattern),
	}
}

// Run searches below the configured root. As with ScanEngine.Run, only a
// failure to list the root itself is returned.
func (s *SearchEngine) Run() (SearchTotals, error) {
	var totals SearchTotals
	err := s.searchDir(s.cfg.Root, 0, &totals.Matches, &totals.Traversed)
	return totals, err
}

func (s *SearchEngine) searchDir(dir string, level int, matches, traversed *EntryCounter) error {
	entries, err := s.entries(dir)
	if err != nil {
		return err
	}

	cur := NewEntryCounter()
	for _, v := range entries {
		matched := s.match(v.info.Name())

		if v.kind != KindDir {
			if !s.cfg.shows(v.kind) || !matched {
				cur.Inc(v.kind, 1)
				continue
			}
			if err := s.out.Entry(s.view(v, level), true); err != nil {
				continue
			}
			cur.Inc(v.kind, 1)
			matches.Inc(v.kind, 1)
			continue
		}

		if !matched {
			cur.Inc(KindDir, 1)
		} else if err := s.out.Entry(s.view(v, level), true); err == nil {
			cur.Inc(KindDir, 1)
			matches.Inc(KindDir, 1)
		}

		// Matches may sit below directories that do not match themselves.
		if s.cfg.descend(level) {
			if err := s.searchDir(v.path, level+1, matches, traversed); err != nil {
				s.log.Errorf(err, "while iterating over \"%s\"", v.path)
			}
		}
	}

	traversed.Merge(cur)
	return nil
}

package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bethropolis/proj2tree/internal/ignore"
	"github.com/bethropolis/proj2tree/internal/logger"
	"github.com/bethropolis/proj2tree/internal/policy"
)

// Scan is the read-only context shared by every step of a traversal: the
// scan root, the policy, the optional ignore matcher and the output name to
// exclude.
type Scan struct {
	root           string
	policy         *policy.Policy
	matcher        *ignore.Matcher
	ignoreFileName string
	outputName     string
	logger         logger.Interface
	tracker        *SkippedTracker
}

// New creates a Scan rooted at root.
func New(root string, opts ...Option) *Scan {
	s := defaultScan(root)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the scan root as given.
func (s *Scan) Root() string { return s.root }

// Policy returns the exclusion policy.
func (s *Scan) Policy() *policy.Policy { return s.policy }

// Tracker returns the skipped-item tracker, possibly nil.
func (s *Scan) Tracker() *SkippedTracker { return s.tracker }

// Logger returns the scan's logger.
func (s *Scan) Logger() logger.Interface { return s.logger }

// Classify decides how e is rendered. Rules are evaluated in order and the
// first match wins.
func (s *Scan) Classify(e Entry) (Outcome, SkippedReason) {
	if s.matcher != nil && s.matcher.ShouldIgnore(e.RelPath, e.IsDir) {
		if e.IsDir {
			return ExcludedVisible, ReasonIgnoredRule
		}
		return ExcludedHidden, ReasonIgnoredRule
	}

	if strings.HasPrefix(e.Name, ".") && e.Name != s.ignoreFileName {
		return ExcludedHidden, ReasonIgnoredHidden
	}

	if e.IsDir && s.policy.IsExcludedDir(e.Name) {
		return ExcludedVisible, ReasonExcludedDir
	}

	if !e.IsDir {
		if _, ok := s.policy.MatchFile(e.Name); ok {
			return ExcludedHidden, ReasonExcludedFile
		}
	}

	if s.outputName != "" && e.Name == s.outputName {
		return ExcludedHidden, ReasonExcludedOutput
	}

	return Included, ReasonNone
}

// List reads dir and returns its entries sorted by name, byte-wise.
func (s *Scan) List(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("walker: read dir %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		path := filepath.Join(dir, d.Name())
		entries = append(entries, Entry{
			Name:    d.Name(),
			Path:    path,
			RelPath: s.relative(path, d.Name()),
			IsDir:   isDir(path, d),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// isDir follows symlinks; a dangling link counts as a file.
func isDir(path string, d os.DirEntry) bool {
	if d.Type()&os.ModeSymlink == 0 {
		return d.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (s *Scan) relative(path, name string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == "." || rel == "" {
		return "./" + name
	}
	return filepath.ToSlash(rel)
}

// Walk visits the scan root depth-first in name order. Directories are
// entered only when they are Included and visit asks to descend.
func (s *Scan) Walk(visit VisitFunc) error {
	return s.walk(s.root, 0, visit)
}

func (s *Scan) walk(dir string, depth int, visit VisitFunc) error {
	entries, err := s.List(dir)
	if err != nil {
		return err
	}

	for i, e := range entries {
		outcome, reason := s.Classify(e)
		if outcome != Included {
			s.logger.Debug("walker: %s %q (%s)", outcome, e.RelPath, reason)
			s.tracker.Track(e.RelPath, reason, e.IsDir)
		}

		descend, err := visit(Visit{
			Entry:   e,
			Depth:   depth,
			Last:    i == len(entries)-1,
			Outcome: outcome,
			Reason:  reason,
		})
		if err != nil {
			return err
		}

		if descend && e.IsDir && outcome == Included {
			if err := s.walk(e.Path, depth+1, visit); err != nil {
				return err
			}
		}
	}
	return nil
}

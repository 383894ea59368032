// Package walker classifies directory entries and drives the depth-first,
// name-ordered traversal shared by the tree and content renderers.
package walker

import "sort"

// Outcome is the classification of a single directory entry.
type Outcome int

const (
	// Included entries are rendered, and directories are descended into.
	Included Outcome = iota
	// ExcludedVisible directories appear in the tree with an ellipsis marker
	// but are not descended into.
	ExcludedVisible
	// ExcludedHidden entries leave no trace in the output.
	ExcludedHidden
)

func (o Outcome) String() string {
	switch o {
	case Included:
		return "included"
	case ExcludedVisible:
		return "excluded-visible"
	case ExcludedHidden:
		return "excluded-hidden"
	default:
		return "unknown"
	}
}

// Entry is one item of a directory listing.
type Entry struct {
	Name    string // basename
	Path    string // root joined with the relative path
	RelPath string // slash-separated, relative to the scan root
	IsDir   bool   // symlinks are resolved
}

// Visit is handed to a VisitFunc for every entry of every listed directory.
type Visit struct {
	Entry
	Depth   int
	Last    bool // last entry of its listing, hidden entries included
	Outcome Outcome
	Reason  SkippedReason
}

// VisitFunc is called in traversal order. Returning descend=false keeps Walk
// out of an Included directory.
type VisitFunc func(v Visit) (descend bool, err error)

// SkippedReason clarifies why a file/directory was not rendered.
type SkippedReason string

const (
	ReasonNone             SkippedReason = ""
	ReasonIgnoredRule      SkippedReason = "Ignored (Gitignore Rule)"
	ReasonIgnoredHidden    SkippedReason = "Ignored (Hidden Rule)"
	ReasonExcludedDir      SkippedReason = "Excluded (Directory Name)"
	ReasonExcludedFile     SkippedReason = "Excluded (File Pattern)"
	ReasonExcludedOutput   SkippedReason = "Excluded (Output File)"
	ReasonSkippedBinary    SkippedReason = "Skipped (Binary Extension)"
	ReasonSkippedSizeLimit SkippedReason = "Skipped (Size Limit Exceeded)"
	ReasonSkippedReadError SkippedReason = "Skipped (Read Error)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string
	Reason SkippedReason
	IsDir  bool
}

// SkippedTracker records skipped paths once each, no matter how many
// renderers visit them.
type SkippedTracker struct {
	items []SkippedItem
	seen  map[string]struct{}
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
		seen:  make(map[string]struct{}, capacity),
	}
}

// Track adds a skipped item. Repeated paths are dropped; a nil tracker is a
// no-op.
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	if st == nil {
		return
	}
	if _, ok := st.seen[path]; ok {
		return
	}
	st.seen[path] = struct{}{}
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns a path-sorted copy of the tracked items.
func (st *SkippedTracker) Items() []SkippedItem {
	if st == nil {
		return nil
	}
	out := make([]SkippedItem, len(st.items))
	copy(out, st.items)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

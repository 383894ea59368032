package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/proj2tree/internal/ignore"
	"github.com/bethropolis/proj2tree/internal/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mkTree creates files (and their parent directories) under root. Names
// ending in "/" create empty directories.
func mkTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if name[len(name)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func testPolicy(t *testing.T) *policy.Policy {
	t.Helper()
	p, err := policy.Compile(policy.Rules{
		ExcludeDirs:  []string{"node_modules", "target"},
		ExcludeFiles: []string{"Cargo.lock", "*.log"},
	})
	require.NoError(t, err)
	return p
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "included", Included.String())
	assert.Equal(t, "excluded-visible", ExcludedVisible.String())
	assert.Equal(t, "excluded-hidden", ExcludedHidden.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}

func TestClassify(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkTree(t, root, map[string]string{".gitignore": "generated/\n*.tmp\n.env\n"})
	m, err := ignore.New(root)
	require.NoError(t, err)

	s := New(root, WithPolicy(testPolicy(t)), WithMatcher(m), WithOutputName("tree.md"))

	tests := []struct {
		name    string
		entry   Entry
		outcome Outcome
		reason  SkippedReason
	}{
		{"IgnoredDir", Entry{Name: "generated", RelPath: "generated", IsDir: true}, ExcludedVisible, ReasonIgnoredRule},
		{"IgnoredFile", Entry{Name: "a.tmp", RelPath: "a.tmp"}, ExcludedHidden, ReasonIgnoredRule},
		{"IgnoredDotfileUsesRule", Entry{Name: ".env", RelPath: ".env"}, ExcludedHidden, ReasonIgnoredRule},
		{"IgnoreFileStaysVisible", Entry{Name: ".gitignore", RelPath: ".gitignore"}, Included, ReasonNone},
		{"NestedIgnoreFileVisible", Entry{Name: ".gitignore", RelPath: "sub/.gitignore"}, Included, ReasonNone},
		{"Dotfile", Entry{Name: ".hidden", RelPath: ".hidden"}, ExcludedHidden, ReasonIgnoredHidden},
		{"DotDir", Entry{Name: ".git", RelPath: ".git", IsDir: true}, ExcludedHidden, ReasonIgnoredHidden},
		{"ExcludedDirName", Entry{Name: "node_modules", RelPath: "node_modules", IsDir: true}, ExcludedVisible, ReasonExcludedDir},
		{"ExcludedDirNameIsFile", Entry{Name: "target", RelPath: "target"}, Included, ReasonNone},
		{"ExcludedFileLiteral", Entry{Name: "Cargo.lock", RelPath: "Cargo.lock"}, ExcludedHidden, ReasonExcludedFile},
		{"ExcludedFilePattern", Entry{Name: "debug.log", RelPath: "logs/debug.log"}, ExcludedHidden, ReasonExcludedFile},
		{"FilePatternSkipsDirs", Entry{Name: "app.log", RelPath: "app.log", IsDir: true}, Included, ReasonNone},
		{"OutputFile", Entry{Name: "tree.md", RelPath: "tree.md"}, ExcludedHidden, ReasonExcludedOutput},
		{"OutputFileNested", Entry{Name: "tree.md", RelPath: "docs/tree.md"}, ExcludedHidden, ReasonExcludedOutput},
		{"Included", Entry{Name: "main.go", RelPath: "main.go"}, Included, ReasonNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			outcome, reason := s.Classify(tt.entry)
			assert.Equal(t, tt.outcome, outcome)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestClassifyWithoutMatcher(t *testing.T) {
	t.Parallel()

	s := New(t.TempDir())

	outcome, _ := s.Classify(Entry{Name: ".gitignore", RelPath: ".gitignore"})
	assert.Equal(t, Included, outcome)

	outcome, _ = s.Classify(Entry{Name: ".npmrc", RelPath: ".npmrc"})
	assert.Equal(t, ExcludedHidden, outcome)

	outcome, _ = s.Classify(Entry{Name: "tree.md", RelPath: "tree.md"})
	assert.Equal(t, Included, outcome, "no output name configured")
}

func TestList(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkTree(t, root, map[string]string{
		"b.txt":     "",
		"B.txt":     "",
		"a/":        "",
		"_x":        "",
		"a/nested":  "",
		"Zeta/":     "",
		"émoji.txt": "",
	})

	s := New(root)
	entries, err := s.List(root)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"B.txt", "Zeta", "_x", "a", "b.txt", "émoji.txt"}, names)

	byName := map[string]Entry{}
	for _, e := range entries {
		byName[e.Name] = e
	}
	assert.True(t, byName["a"].IsDir)
	assert.False(t, byName["b.txt"].IsDir)
	assert.Equal(t, "a", byName["a"].RelPath)

	nested, err := s.List(filepath.Join(root, "a"))
	require.NoError(t, err)
	require.Len(t, nested, 1)
	assert.Equal(t, "a/nested", nested[0].RelPath)
}

func TestListMissingDir(t *testing.T) {
	t.Parallel()

	s := New(t.TempDir())
	_, err := s.List(filepath.Join(s.Root(), "missing"))
	assert.Error(t, err)
}

func TestListSymlinkToDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkTree(t, root, map[string]string{"real/f.txt": "x"})
	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(root, "nowhere"), filepath.Join(root, "dangling")))

	entries, err := New(root).List(root)
	require.NoError(t, err)

	kinds := map[string]bool{}
	for _, e := range entries {
		kinds[e.Name] = e.IsDir
	}
	assert.True(t, kinds["link"])
	assert.False(t, kinds["dangling"])
}

func TestWalk(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkTree(t, root, map[string]string{
		"a.txt":             "hello",
		".hidden":           "x",
		"node_modules/x.js": "x",
		"src/main.go":       "package main",
		"src/util/u.go":     "package util",
	})

	tracker := NewSkippedTracker(4)
	s := New(root, WithPolicy(testPolicy(t)), WithTracker(tracker))

	type seen struct {
		rel     string
		depth   int
		last    bool
		outcome Outcome
	}
	var got []seen
	err := s.Walk(func(v Visit) (bool, error) {
		got = append(got, seen{v.RelPath, v.Depth, v.Last, v.Outcome})
		return true, nil
	})
	require.NoError(t, err)

	assert.Equal(t, []seen{
		{".hidden", 0, false, ExcludedHidden},
		{"a.txt", 0, false, Included},
		{"node_modules", 0, false, ExcludedVisible},
		{"src", 0, true, Included},
		{"src/main.go", 1, false, Included},
		{"src/util", 1, true, Included},
		{"src/util/u.go", 2, true, Included},
	}, got)

	assert.Equal(t, []SkippedItem{
		{Path: ".hidden", Reason: ReasonIgnoredHidden},
		{Path: "node_modules", Reason: ReasonExcludedDir, IsDir: true},
	}, tracker.Items())
}

func TestWalkNoDescend(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkTree(t, root, map[string]string{"dir/inner.txt": "", "file.txt": ""})

	var rels []string
	err := New(root).Walk(func(v Visit) (bool, error) {
		rels = append(rels, v.RelPath)
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"dir", "file.txt"}, rels)
}

func TestWalkStopsOnError(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkTree(t, root, map[string]string{"a": "", "b": ""})

	boom := assert.AnError
	calls := 0
	err := New(root).Walk(func(v Visit) (bool, error) {
		calls++
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestSkippedTracker(t *testing.T) {
	t.Parallel()

	tr := NewSkippedTracker(2)
	tr.Track("b", ReasonSkippedBinary, false)
	tr.Track("a", ReasonExcludedDir, true)
	tr.Track("b", ReasonSkippedBinary, false)

	items := tr.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Path)
	assert.Equal(t, "b", items[1].Path)

	var nilTracker *SkippedTracker
	nilTracker.Track("x", ReasonNone, false)
	assert.Nil(t, nilTracker.Items())
}

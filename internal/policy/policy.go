// Package policy holds the static exclusion rules applied while rendering a
// directory: excluded directory names, excluded file name patterns, binary
// extensions, a size ceiling, and the extension to language-tag mapping.
package policy

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// DefaultLanguage is the fence info-string used for unmapped extensions.
const DefaultLanguage = "text"

// Rules is the raw, serialisable form of a policy.
type Rules struct {
	ExcludeDirs       []string          `toml:"exclude_dirs" yaml:"exclude_dirs"`
	ExcludeFiles      []string          `toml:"exclude_files" yaml:"exclude_files"`
	ExcludeExtensions []string          `toml:"exclude_extensions" yaml:"exclude_extensions"`
	MaxFileSize       *int64            `toml:"max_file_size" yaml:"max_file_size"`
	ExtensionMapping  map[string]string `toml:"extension_mapping" yaml:"extension_mapping"`
}

// Policy is the compiled, read-only exclusion policy. The zero value excludes
// nothing and maps every extension to DefaultLanguage.
type Policy struct {
	dirs       map[string]struct{}
	files      []filePattern
	extensions map[string]struct{}
	maxSize    int64
	hasMaxSize bool
	languages  map[string]string
}

type filePattern struct {
	matcher  glob.Glob
	original string
}

// Empty returns a policy that excludes nothing.
func Empty() *Policy {
	return &Policy{}
}

// Compile builds a Policy from raw rules.
func Compile(r Rules) (*Policy, error) {
	p := &Policy{
		dirs:       make(map[string]struct{}, len(r.ExcludeDirs)),
		extensions: make(map[string]struct{}, len(r.ExcludeExtensions)),
		languages:  make(map[string]string, len(r.ExtensionMapping)),
	}

	for _, d := range r.ExcludeDirs {
		if d = strings.TrimSpace(d); d != "" {
			p.dirs[d] = struct{}{}
		}
	}

	for _, raw := range r.ExcludeFiles {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		g, err := glob.Compile(fileGlob(raw))
		if err != nil {
			return nil, fmt.Errorf("policy: invalid file pattern %q: %w", raw, err)
		}
		p.files = append(p.files, filePattern{matcher: g, original: raw})
	}

	for _, ext := range r.ExcludeExtensions {
		if ext = normalizeExt(ext); ext != "" {
			p.extensions[ext] = struct{}{}
		}
	}

	if r.MaxFileSize != nil {
		if *r.MaxFileSize < 0 {
			return nil, fmt.Errorf("policy: max_file_size must not be negative, got %d", *r.MaxFileSize)
		}
		p.maxSize = *r.MaxFileSize
		p.hasMaxSize = true
	}

	for ext, lang := range r.ExtensionMapping {
		if ext = normalizeExt(ext); ext != "" {
			p.languages[ext] = lang
		}
	}

	return p, nil
}

// fileGlob turns an exclude_files entry into a glob. "*.<suffix>" matches a
// basename that ends with <suffix> or contains ".<suffix>"; anything else is
// an exact basename.
func fileGlob(pattern string) string {
	if suffix, ok := strings.CutPrefix(pattern, "*."); ok {
		q := strings.ReplaceAll(glob.QuoteMeta(suffix), ",", `\,`)
		return "{*" + q + ",*." + q + "*}"
	}
	return glob.QuoteMeta(pattern)
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

// WithMaxFileSize returns a copy of p whose ceiling is n bytes.
func (p *Policy) WithMaxFileSize(n int64) *Policy {
	cp := *p
	cp.maxSize = n
	cp.hasMaxSize = true
	return &cp
}

// IsExcludedDir reports whether a directory basename is hidden behind an
// ellipsis marker.
func (p *Policy) IsExcludedDir(name string) bool {
	_, ok := p.dirs[name]
	return ok
}

// MatchFile returns the exclude_files pattern matching name, if any.
func (p *Policy) MatchFile(name string) (string, bool) {
	for _, f := range p.files {
		if f.matcher.Match(name) {
			return f.original, true
		}
	}
	return "", false
}

// IsBinary reports whether name carries a blacklisted extension.
func (p *Policy) IsBinary(name string) bool {
	ext := Extension(name)
	if ext == "" {
		return false
	}
	_, ok := p.extensions[ext]
	return ok
}

// TooLarge reports whether size exceeds the configured ceiling.
func (p *Policy) TooLarge(size int64) bool {
	return p.hasMaxSize && size > p.maxSize
}

// MaxFileSize returns the ceiling and whether one is set.
func (p *Policy) MaxFileSize() (int64, bool) {
	return p.maxSize, p.hasMaxSize
}

// Language returns the fence info-string for name.
func (p *Policy) Language(name string) string {
	if lang, ok := p.languages[Extension(name)]; ok {
		return lang
	}
	return DefaultLanguage
}

// Stats returns the number of rules of each kind.
func (p *Policy) Stats() (dirs, files, extensions, languages int) {
	return len(p.dirs), len(p.files), len(p.extensions), len(p.languages)
}

// Extension returns the lower-cased extension of a basename without the dot.
// Names whose only dot is the leading one (".gitignore") have no extension.
func Extension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return ""
	}
	return strings.ToLower(ext[1:])
}

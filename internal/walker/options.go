package walker

import (
	"github.com/bethropolis/proj2tree/internal/ignore"
	"github.com/bethropolis/proj2tree/internal/logger"
	"github.com/bethropolis/proj2tree/internal/policy"
)

// Option is a functional option for configuring a Scan
type Option func(*Scan)

// defaultScan returns a scan with an empty policy and no matcher.
func defaultScan(root string) *Scan {
	return &Scan{
		root:           root,
		policy:         policy.Empty(),
		ignoreFileName: ignore.DefaultFileName,
		logger:         logger.Noop{},
	}
}

// WithPolicy sets the exclusion policy.
func WithPolicy(p *policy.Policy) Option {
	return func(s *Scan) {
		if p != nil {
			s.policy = p
		}
	}
}

// WithMatcher sets the ignore matcher. nil means no matcher.
func WithMatcher(m *ignore.Matcher) Option {
	return func(s *Scan) {
		s.matcher = m
		if m != nil {
			s.ignoreFileName = m.FileName()
		}
	}
}

// WithOutputName excludes entries with this basename from rendering.
func WithOutputName(name string) Option {
	return func(s *Scan) {
		s.outputName = name
	}
}

// WithLogger sets a custom logger for the walker
func WithLogger(l logger.Interface) Option {
	return func(s *Scan) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracker records excluded and skipped entries.
func WithTracker(t *SkippedTracker) Option {
	return func(s *Scan) {
		s.tracker = t
	}
}

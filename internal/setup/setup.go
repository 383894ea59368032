// Package setup builds the exclusion policy, the ignore matcher and the scan
// context from the run configuration.
package setup

import (
	"errors"

	"github.com/bethropolis/proj2tree/internal/config"
	"github.com/bethropolis/proj2tree/internal/ignore"
	"github.com/bethropolis/proj2tree/internal/logger"
	"github.com/bethropolis/proj2tree/internal/policy"
	"github.com/bethropolis/proj2tree/internal/walker"
)

// LoadPolicy returns the embedded policy, or the one in cfg.PolicyFile. Parse
// failures are logged and yield an empty policy.
func LoadPolicy(cfg *config.Config, log logger.Interface) *policy.Policy {
	var (
		p   *policy.Policy
		err error
	)
	if cfg.PolicyFile != "" {
		p, err = policy.LoadFile(cfg.PolicyFile)
	} else {
		p, err = policy.Default()
	}

	if err != nil {
		log.Warn("Could not load exclusion policy, nothing is excluded by policy: %v", err)
	} else if cfg.PolicyFile != "" {
		log.Info("Using exclusion policy from %s", cfg.PolicyFile)
	} else {
		log.Debug("Using built-in exclusion policy")
	}

	if cfg.MaxFileSize > 0 {
		p = p.WithMaxFileSize(cfg.MaxFileSize)
		log.Info("Skipping contents of files larger than %d bytes.", cfg.MaxFileSize)
	}

	dirs, files, exts, langs := p.Stats()
	log.Debug("Policy: %d dir names, %d file patterns, %d binary extensions, %d language mappings",
		dirs, files, exts, langs)
	return p
}

// LoadMatcher builds the ignore matcher for rootDir. It returns nil when
// ignore handling is disabled or the ignore file is missing or invalid.
func LoadMatcher(cfg *config.Config, rootDir string, log logger.Interface) *ignore.Matcher {
	if cfg.NoGitignore {
		log.Info(".gitignore handling disabled")
		return nil
	}

	m, err := ignore.New(rootDir, ignore.WithLogger(log))
	if err != nil {
		if errors.Is(err, ignore.ErrNotFound) {
			log.Warn("No .gitignore found in %s", rootDir)
		} else {
			log.Warn("Ignoring .gitignore: %v", err)
		}
		return nil
	}

	log.Info("Applying rules from .gitignore")
	return m
}

// Configure returns the scan context for cfg.RootDir. tracker may be nil.
func Configure(cfg *config.Config, log logger.Interface, tracker *walker.SkippedTracker) *walker.Scan {
	return walker.New(cfg.RootDir,
		walker.WithPolicy(LoadPolicy(cfg, log)),
		walker.WithMatcher(LoadMatcher(cfg, cfg.RootDir, log)),
		walker.WithOutputName(cfg.ExcludedOutputName()),
		walker.WithLogger(log),
		walker.WithTracker(tracker),
	)
}

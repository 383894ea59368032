// Package config holds the run configuration assembled from command-line
// flags.
package config

import (
	"os"
	"path/filepath"

	"github.com/bethropolis/proj2tree/internal/logger"
	"github.com/mattn/go-isatty"
)

// DefaultOutputName is written inside the scan root when no output path is given.
const DefaultOutputName = "tree.md"

// Config holds all application configuration settings
type Config struct {
	// Directory settings
	RootDir string

	// Output settings
	OutputFile     string
	NoTree         bool
	NoContents     bool
	PrintToConsole bool

	// Filtering settings
	NoGitignore bool
	PolicyFile  string
	MaxFileSize int64

	// Logging settings
	Verbose     bool
	Quiet       bool
	LogLevel    string
	NoColor     bool
	UseColors   bool
	ShowSkipped bool

	Version string
}

// New returns a Config with the defaults used by the command line.
func New() *Config {
	return &Config{
		RootDir: ".",
		Version: "dev",
	}
}

// Finalize derives settings that depend on other fields and on the terminal.
func (c *Config) Finalize() {
	if c.RootDir == "" {
		c.RootDir = "."
	}
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())
}

// IncludeTree reports whether the tree section is rendered.
func (c *Config) IncludeTree() bool { return !c.NoTree }

// IncludeContents reports whether the contents section is rendered.
func (c *Config) IncludeContents() bool { return !c.NoContents }

// OutputPath returns the file the document is written to, or "" when the
// document goes to stdout.
func (c *Config) OutputPath() string {
	if c.PrintToConsole {
		return ""
	}
	if c.OutputFile != "" {
		return c.OutputFile
	}
	return filepath.Join(c.RootDir, DefaultOutputName)
}

// ExcludedOutputName returns the basename kept out of the document so a
// previous run's output is never included. An explicit output file is
// excluded in both sink modes; the default name only when writing a file.
func (c *Config) ExcludedOutputName() string {
	if c.OutputFile != "" {
		return filepath.Base(c.OutputFile)
	}
	if c.PrintToConsole {
		return ""
	}
	return DefaultOutputName
}

// Level resolves the effective log level. An explicit LogLevel wins over
// Verbose and Quiet.
func (c *Config) Level() logger.Level {
	switch {
	case c.LogLevel != "":
		return logger.ParseLevel(c.LogLevel)
	case c.Verbose:
		return logger.LevelDebug
	case c.Quiet:
		return logger.LevelWarn
	default:
		return logger.LevelInfo
	}
}

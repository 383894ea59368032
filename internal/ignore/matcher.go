package ignore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bethropolis/proj2tree/internal/logger"
	gitignore "github.com/denormal/go-gitignore"
)

// New loads the ignore file at the root of rootDir. Only that one file is
// read; ignore files in subdirectories are not consulted. It returns
// ErrNotFound when the file is absent and a wrapped error when it cannot be
// read or contains an invalid pattern.
func New(rootDir string, opts ...Option) (*Matcher, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	m := &Matcher{
		rootDir:  absRootDir,
		fileName: DefaultFileName,
		logger:   logger.Noop{},
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Matcher) load() error {
	path := filepath.Join(m.rootDir, m.fileName)
	m.logger.Debug("ignore.New: loading %s", path)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("ignore: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("ignore: %s is a directory", path)
	}

	var first gitignore.Error
	rules := gitignore.NewWithErrors(path, func(e gitignore.Error) bool {
		if first == nil {
			first = e
		}
		return true
	})
	if first != nil {
		return fmt.Errorf("ignore: %s: %w", path, first)
	}
	if rules == nil {
		return fmt.Errorf("ignore: could not read %s", path)
	}

	m.rules = rules
	m.logger.Debug("ignore.New: loaded rules from %s", path)
	return nil
}

// FileName returns the ignore file's basename.
func (m *Matcher) FileName() string {
	if m == nil {
		return DefaultFileName
	}
	return m.fileName
}

// Package ignore matches paths against the single ignore file found at the
// scan root.
package ignore

import (
	"errors"

	"github.com/bethropolis/proj2tree/internal/logger"
	gitignore "github.com/denormal/go-gitignore"
)

// DefaultFileName is the ignore file looked up at the scan root.
const DefaultFileName = ".gitignore"

// ErrNotFound is returned by New when the root has no ignore file.
var ErrNotFound = errors.New("ignore: file not found")

// Matcher reports whether root-relative paths are ignored. A nil *Matcher is
// valid and ignores nothing.
type Matcher struct {
	rules    gitignore.GitIgnore
	rootDir  string
	fileName string
	logger   logger.Interface
}

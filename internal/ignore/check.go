package ignore

import "path/filepath"

// ShouldIgnore reports whether relativePath (relative to the scan root) is
// ignored. Negated patterns that match re-include the path.
func (m *Matcher) ShouldIgnore(relativePath string, isDir bool) bool {
	if m == nil || m.rules == nil {
		return false
	}
	if relativePath == "" || relativePath == "." {
		return false
	}

	unixPath := filepath.ToSlash(relativePath)

	var ignored bool
	func() {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("PANIC recovered in gitignore library for path %q: %v", relativePath, r)
				ignored = false
			}
		}()
		if match := m.rules.Relative(unixPath, isDir); match != nil {
			ignored = match.Ignore()
		}
	}()

	if ignored {
		m.logger.Debug("ignore.ShouldIgnore: %q ignored by %s", unixPath, m.fileName)
	}
	return ignored
}

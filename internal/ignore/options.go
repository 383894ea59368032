package ignore

import "github.com/bethropolis/proj2tree/internal/logger"

// Option configures a Matcher.
type Option func(*Matcher)

func WithLogger(l logger.Interface) Option {
	return func(m *Matcher) {
		if l != nil {
			m.logger = l
		}
	}
}

package printer

import (
	"strings"

	"github.com/bethropolis/proj2tree/internal/walker"
)

const (
	indentUnit   = "    "
	branchMiddle = "├── "
	branchLast   = "└── "
	ellipsis     = " ..."
)

// PrintTree writes the ASCII tree of the scan root, one entry per line.
// Hidden entries produce no line, but still count when deciding which
// sibling is drawn as the last branch.
func (p *Printer) PrintTree() error {
	ew := &errWriter{w: p.output}

	err := p.scan.Walk(func(v walker.Visit) (bool, error) {
		if v.Outcome == walker.ExcludedHidden {
			return false, nil
		}

		branch := branchMiddle
		if v.Last {
			branch = branchLast
		}
		ew.write(strings.Repeat(indentUnit, v.Depth))
		ew.write(branch)
		ew.write(v.Name)

		switch {
		case v.Outcome == walker.ExcludedVisible:
			ew.write("/" + ellipsis + "\n")
		case v.IsDir:
			ew.write("/\n")
		default:
			ew.write("\n")
		}
		return true, ew.err
	})
	if err != nil {
		return err
	}
	return ew.err
}

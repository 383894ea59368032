package printer

import "path/filepath"

// Title returns the label used for root in the document heading.
func Title(root string) string {
	if filepath.Clean(root) == "." {
		return currentDirLabel
	}
	return root
}

// PrintDocument writes the title followed by the enabled sections, tree
// first. With both sections disabled only the title is written.
func (p *Printer) PrintDocument() error {
	ew := &errWriter{w: p.output}
	ew.printf(titleFormat, Title(p.scan.Root()))

	if p.includeTree && ew.err == nil {
		ew.write(treeHeading)
		ew.write("```\n")
		if ew.err == nil {
			if err := p.PrintTree(); err != nil {
				return err
			}
		}
		ew.write("```\n\n")
	}

	if p.includeContents && ew.err == nil {
		ew.write(contentsHeading)
		if ew.err == nil {
			if err := p.PrintContents(); err != nil {
				return err
			}
		}
	}

	return ew.err
}

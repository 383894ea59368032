package printer

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/proj2tree/internal/walker"
)

// PrintContents writes a heading and a fenced block for every included
// text file. Binary and oversized files are skipped without a trace.
func (p *Printer) PrintContents() error {
	ew := &errWriter{w: p.output}

	err := p.scan.Walk(func(v walker.Visit) (bool, error) {
		if v.Outcome != walker.Included {
			return false, nil
		}
		if v.IsDir {
			return true, nil
		}
		p.printFile(ew, v.Entry)
		return false, ew.err
	})
	if err != nil {
		return err
	}
	return ew.err
}

// printFile writes a single file block, applying the binary and size checks.
func (p *Printer) printFile(ew *errWriter, e walker.Entry) {
	pol := p.scan.Policy()
	tracker := p.scan.Tracker()

	if pol.IsBinary(e.Name) {
		p.log.Debug("printer: skipping binary %q", e.RelPath)
		tracker.Track(e.RelPath, walker.ReasonSkippedBinary, false)
		return
	}
	if info, err := os.Stat(e.Path); err == nil && pol.TooLarge(info.Size()) {
		p.log.Debug("printer: skipping %q, %d bytes exceeds limit", e.RelPath, info.Size())
		tracker.Track(e.RelPath, walker.ReasonSkippedSizeLimit, false)
		return
	}

	ew.printf("\n### `%s`\n\n", e.RelPath)
	p.count.Add(1)

	content, ok := p.readText(e)
	if !ok {
		tracker.Track(e.RelPath, walker.ReasonSkippedReadError, false)
		ew.write("```\n" + unreadableMessage + "\n```\n")
		return
	}

	fence := Fence(content)
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	ew.write(fence + pol.Language(e.Name) + "\n")
	ew.write(content)
	ew.write(fence + "\n")
}

// readText returns the file as a string, or false when it cannot be read or
// is not valid UTF-8.
func (p *Printer) readText(e walker.Entry) (string, bool) {
	data, err := os.ReadFile(e.Path)
	if err != nil {
		p.log.Warn("Could not read '%s': %v", e.RelPath, err)
		return "", false
	}
	if !utf8.Valid(data) {
		p.log.Debug("printer: %q is not valid UTF-8", e.RelPath)
		return "", false
	}
	return string(data), true
}

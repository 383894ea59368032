// Package printer renders a scanned directory as a Markdown document: an
// ASCII tree followed by each included file in a collision-free code fence.
package printer

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/bethropolis/proj2tree/internal/logger"
	"github.com/bethropolis/proj2tree/internal/walker"
)

// Document text. The output format is Russian-language Markdown.
const (
	titleFormat       = "# Структура проекта: %s\n\n"
	treeHeading       = "## Дерево файлов\n\n"
	contentsHeading   = "## Содержимое файлов\n\n"
	currentDirLabel   = "текущая директория"
	unreadableMessage = "[Не удалось прочитать файл]"
)

// Printer writes the document for one Scan to the configured output.
type Printer struct {
	output          io.Writer
	scan            *walker.Scan
	includeTree     bool
	includeContents bool
	log             logger.Interface
	count           atomic.Int64
}

// New creates a Printer for scan with both sections enabled, writing to stdout.
func New(scan *walker.Scan) *Printer {
	return &Printer{
		output:          os.Stdout,
		scan:            scan,
		includeTree:     true,
		includeContents: true,
		log:             scan.Logger(),
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithTree enables or disables the tree section.
func (p *Printer) WithTree(enabled bool) *Printer {
	p.includeTree = enabled
	return p
}

// WithContents enables or disables the contents section.
func (p *Printer) WithContents(enabled bool) *Printer {
	p.includeContents = enabled
	return p
}

// WithLogger overrides the logger inherited from the scan.
func (p *Printer) WithLogger(l logger.Interface) *Printer {
	if l != nil {
		p.log = l
	}
	return p
}

// GetCount returns the number of file blocks written, placeholders included.
func (p *Printer) GetCount() int64 {
	return p.count.Load()
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) write(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

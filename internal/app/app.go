// Package app wires configuration, scanning and rendering into one run.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bethropolis/proj2tree/internal/config"
	"github.com/bethropolis/proj2tree/internal/logger"
	"github.com/bethropolis/proj2tree/internal/printer"
	"github.com/bethropolis/proj2tree/internal/setup"
	"github.com/bethropolis/proj2tree/internal/summary"
	"github.com/bethropolis/proj2tree/internal/walker"
	"github.com/fatih/color"
)

// ErrNotDirectory is returned when the target path is missing or not a directory.
var ErrNotDirectory = errors.New("not an existing directory")

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewWithWriters creates an App that writes the document to stdout (when
// printing to console) and diagnostics to stderr.
func NewWithWriters(cfg *config.Config, stdout, stderr io.Writer) *App {
	color.NoColor = !cfg.UseColors

	return &App{
		cfg:    cfg,
		log:    logger.New(stderr, cfg.Level(), cfg.UseColors),
		stdout: stdout,
		stderr: stderr,
	}
}

// Run validates the target directory, renders the document and writes it to
// the selected sink.
func (a *App) Run() error {
	startTime := time.Now()

	a.log.Debug("Directory: %s", a.cfg.RootDir)
	a.log.Debug("Sections: tree=%v, contents=%v", a.cfg.IncludeTree(), a.cfg.IncludeContents())

	info, err := os.Stat(a.cfg.RootDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("'%s' %w", a.cfg.RootDir, ErrNotDirectory)
	}

	var tracker *walker.SkippedTracker
	if a.cfg.ShowSkipped {
		tracker = walker.NewSkippedTracker(64)
	}
	scan := setup.Configure(a.cfg, a.log, tracker)

	p := printer.New(scan).
		WithTree(a.cfg.IncludeTree()).
		WithContents(a.cfg.IncludeContents()).
		WithLogger(a.log)

	outputPath := a.cfg.OutputPath()
	if outputPath == "" {
		if err := a.render(p, a.stdout); err != nil {
			return err
		}
	} else {
		if err := a.renderToFile(p, outputPath); err != nil {
			return err
		}
		a.log.Info("Result saved to %s", outputPath)
	}
	a.log.Info("Analysed directory: %s", a.cfg.RootDir)

	summary.DisplayResults(a.log, p.GetCount(), time.Since(startTime))
	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, tracker.Items(), a.stderr, a.cfg.UseColors)
	}
	return nil
}

func (a *App) renderToFile(p *printer.Printer, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()
	return a.render(p, f)
}

func (a *App) render(p *printer.Printer, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := p.WithOutput(bw).PrintDocument(); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

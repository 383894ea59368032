// Package summary handles display of run results and statistics
package summary

import (
	"fmt"
	"io"
	"time"

	"github.com/bethropolis/proj2tree/internal/walker"
	"github.com/fatih/color"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults logs the end-of-run statistics.
func DisplayResults(logger Logger, fileCount int64, duration time.Duration) {
	logger.Info("Rendered %d files.", fileCount)
	logger.Info("Done in %v.", duration.Round(time.Millisecond))
}

// DisplaySkippedItems prints every skipped path with its reason, one per
// line, in path order.
func DisplaySkippedItems(logger Logger, skippedItems []walker.SkippedItem, output io.Writer, useColors bool) {
	logger.Info("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) == 0 {
		logger.Info("No items were skipped.")
		logger.Info("--- End Skipped Items ---")
		return
	}

	reason := fmt.Sprint
	if useColors {
		reason = color.New(color.FgYellow).Sprint
	}

	for _, item := range skippedItems {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // Add space for alignment
		}
		fmt.Fprintf(output, "Skipped %s: %-50s [%s]\n", typeStr, item.Path, reason(string(item.Reason)))
	}
	logger.Info("--- End Skipped Items ---")
}

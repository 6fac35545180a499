package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"whitemask/internal/pipeline"
)

// newScanProgress returns a progress callback for catalog streaming, plus a
// finish func. Outside a terminal both are no-ops so logs stay clean.
func newScanProgress(description string) (pipeline.ProgressFunc, func()) {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return nil, func() {}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stdout),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	progress := func(records int) {
		_ = bar.Set(records)
	}
	finish := func() {
		_ = bar.Finish()
	}
	return progress, finish
}

package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"

	"whitemask/internal/catalog"
	"whitemask/internal/config"
	"whitemask/internal/fingerprint"
	"whitemask/internal/history"
	"whitemask/internal/preflight"
	"whitemask/internal/report"
	"whitemask/internal/runs"
)

// ProgressFunc receives the number of catalog records processed so far.
type ProgressFunc func(records int)

// FingerprintSummary reports one fingerprint run's outcome.
type FingerprintSummary struct {
	Liked        int
	Baseline     int
	SkippedLines int
	Entries      []fingerprint.Entry
	OutputPath   string
}

// RunFingerprint streams the catalog once, builds the lexicon, and writes it
// to the canonical "latest" path plus a timestamped copy. The run is recorded
// in the ledger whether it succeeds, comes up empty, or fails.
func RunFingerprint(ctx context.Context, cfg *config.Config, logger *slog.Logger, progress ProgressFunc) (*FingerprintSummary, error) {
	if err := preflight.Err(preflight.ForFingerprint(cfg)); err != nil {
		return nil, err
	}

	store, err := runs.Open(cfg.LedgerPath())
	if err != nil {
		return nil, err
	}
	defer store.Close()

	run, err := store.Begin(ctx, runs.KindFingerprint)
	if err != nil {
		return nil, err
	}

	summary, runErr := runFingerprint(ctx, cfg, logger, progress)
	finalizeRun(ctx, store, run, logger, runErr, fingerprint.ErrNoMotifs, func() {
		run.LikedCount = summary.Liked
		run.BaselineCount = summary.Baseline
		run.EmittedCount = len(summary.Entries)
		run.OutputPath = summary.OutputPath
	})
	if runErr != nil {
		return nil, runErr
	}
	return summary, nil
}

func runFingerprint(ctx context.Context, cfg *config.Config, logger *slog.Logger, progress ProgressFunc) (*FingerprintSummary, error) {
	matcher, err := history.Load(cfg.Paths.FilmsCSV, logger)
	if err != nil {
		return &FingerprintSummary{}, err
	}
	logger.Info("personal film list loaded", "films", matcher.Len(), "duplicates", matcher.Duplicates())

	builder := fingerprint.NewBuilder(fingerprint.Config{
		Alpha:                cfg.Fingerprint.Alpha,
		MinLikedFreq:         cfg.Fingerprint.MinLikedFreq,
		MinDirectorDiversity: cfg.Fingerprint.MinDirectorDiversity,
		BaselineCap:          cfg.Fingerprint.BaselineCap,
		ReviewCap:            cfg.Fingerprint.ReviewCap,
	}, matcher)

	summary := &FingerprintSummary{}
	reader, err := catalog.Open(cfg.Paths.Catalog)
	if err != nil {
		return summary, err
	}
	defer reader.Close()

	records := 0
	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return summary, err
		}
		builder.Observe(rec)
		records++
		if progress != nil {
			progress(records)
		}
	}
	summary.Liked = builder.LikedCount()
	summary.Baseline = builder.BaselineCount()
	summary.SkippedLines = reader.Skipped()
	if summary.SkippedLines > 0 {
		logger.Warn("catalog lines skipped", "lines", summary.SkippedLines)
	}
	logger.Info("catalog mined", "records", records,
		"liked", summary.Liked, "baseline", summary.Baseline)

	entries, err := builder.Build()
	if err != nil {
		return summary, err
	}
	summary.Entries = entries

	saver := report.NewSaver(logger)
	encode := func(w io.Writer) error {
		return fingerprint.WriteLexicon(w, entries)
	}
	latest, err := saver.Save(cfg.LexiconPath(), encode)
	if err != nil {
		return summary, err
	}
	summary.OutputPath = latest

	stamped := filepath.Join(cfg.Paths.OutputDir, "whitemask_fingerprint_"+saver.Timestamp()+".csv")
	if _, err := saver.Save(stamped, encode); err != nil {
		// The latest copy is already on disk; the dated copy is best-effort.
		logger.Warn("timestamped lexicon copy failed", "error", err)
	}

	logger.Info("lexicon written", "motifs", len(entries), "path", latest)
	return summary, nil
}

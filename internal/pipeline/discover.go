package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"

	"whitemask/internal/catalog"
	"whitemask/internal/config"
	"whitemask/internal/discovery"
	"whitemask/internal/fingerprint"
	"whitemask/internal/history"
	"whitemask/internal/preflight"
	"whitemask/internal/report"
	"whitemask/internal/runs"
)

// DiscoverSummary reports one discovery run's outcome.
type DiscoverSummary struct {
	Favored      int
	Scanned      int
	SkippedLines int
	Results      []discovery.Result
	OutputPath   string
}

// RunDiscover loads the lexicon, pre-scans the catalog for favored creators,
// scores every unseen candidate in a second pass, and writes the ranked CSV.
func RunDiscover(ctx context.Context, cfg *config.Config, logger *slog.Logger, lexiconPath string, progress ProgressFunc) (*DiscoverSummary, error) {
	if lexiconPath == "" {
		lexiconPath = cfg.LexiconPath()
	}
	if err := preflight.Err(preflight.ForDiscover(cfg, lexiconPath)); err != nil {
		return nil, err
	}

	store, err := runs.Open(cfg.LedgerPath())
	if err != nil {
		return nil, err
	}
	defer store.Close()

	run, err := store.Begin(ctx, runs.KindDiscover)
	if err != nil {
		return nil, err
	}

	summary, runErr := runDiscover(ctx, cfg, logger, lexiconPath, progress)
	finalizeRun(ctx, store, run, logger, runErr, discovery.ErrNoCandidates, func() {
		run.EmittedCount = len(summary.Results)
		run.OutputPath = summary.OutputPath
	})
	if runErr != nil {
		return nil, runErr
	}
	return summary, nil
}

func runDiscover(ctx context.Context, cfg *config.Config, logger *slog.Logger, lexiconPath string, progress ProgressFunc) (*DiscoverSummary, error) {
	summary := &DiscoverSummary{}

	lexicon, err := fingerprint.ReadLexicon(lexiconPath)
	if err != nil {
		return summary, err
	}
	logger.Info("lexicon loaded", "motifs", len(lexicon), "path", lexiconPath)

	matcher, err := history.Load(cfg.Paths.FilmsCSV, logger)
	if err != nil {
		return summary, err
	}

	scorer := discovery.NewScorer(discovery.Config{
		ScoreThreshold: cfg.Discovery.ScoreThreshold,
		DrearyPenalty:  cfg.Discovery.DrearyPenalty,
		LegacyBonus:    cfg.Discovery.LegacyBonus,
		ReviewCap:      cfg.Discovery.ReviewCap,
		CastCap:        cfg.Discovery.CastCap,
		EvidenceCap:    cfg.Discovery.EvidenceCap,
		DrearyTokens:   cfg.Discovery.DrearyTokens,
		RegionalBoost:  cfg.Discovery.RegionalBoost,
	}, lexicon, matcher)

	// Pass one: collect favored creators from films the user has seen.
	if err := streamCatalog(ctx, cfg.Paths.Catalog, nil, func(rec *catalog.Record) {
		scorer.PreScan(rec)
	}); err != nil {
		return summary, err
	}
	summary.Favored = scorer.FavoredCount()
	logger.Info("favored creators collected", "creators", summary.Favored)

	// Pass two: score candidates.
	var results []discovery.Result
	scanned := 0
	err = streamCatalog(ctx, cfg.Paths.Catalog, &summary.SkippedLines, func(rec *catalog.Record) {
		if result, ok := scorer.Score(rec); ok {
			results = append(results, result)
		}
		scanned++
		if progress != nil {
			progress(scanned)
		}
	})
	if err != nil {
		return summary, err
	}
	summary.Scanned = scanned
	if summary.SkippedLines > 0 {
		logger.Warn("catalog lines skipped", "lines", summary.SkippedLines)
	}

	if len(results) == 0 {
		return summary, discovery.ErrNoCandidates
	}
	discovery.SortResults(results)
	summary.Results = results

	saver := report.NewSaver(logger)
	dest := filepath.Join(cfg.Paths.OutputDir, "whitemask_discoveries_"+saver.Timestamp()+".csv")
	written, err := saver.Save(dest, func(w io.Writer) error {
		return discovery.WriteResults(w, results)
	})
	if err != nil {
		return summary, err
	}
	summary.OutputPath = written

	logger.Info("rankings written", "candidates", len(results), "path", written)
	return summary, nil
}

func streamCatalog(ctx context.Context, path string, skipped *int, visit func(*catalog.Record)) error {
	reader, err := catalog.Open(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		visit(rec)
	}
	if skipped != nil {
		*skipped = reader.Skipped()
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"whitemask/internal/config"
	"whitemask/internal/discovery"
	"whitemask/internal/pipeline"
)

func newDiscoverCommand(ctx *commandContext) *cobra.Command {
	var catalogFlag string
	var filmsFlag string
	var lexiconFlag string
	var outputFlag string
	var topFlag int

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Score unseen catalog records against the motif lexicon",
		Long: `Scans the catalog for films you have not seen, scores each one against
the motif lexicon, and writes the ranked candidates to a timestamped CSV in
the output directory. Run "whitemask fingerprint" first to build the lexicon.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyPathOverrides(cfg, catalogFlag, filmsFlag, outputFlag); err != nil {
				return err
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			progress, finish := newScanProgress("Scoring catalog")
			summary, err := pipeline.RunDiscover(cmd.Context(), cfg, logger, lexiconFlag, progress)
			finish()
			if err != nil {
				if errors.Is(err, discovery.ErrNoCandidates) {
					return fmt.Errorf("no candidate cleared the score threshold (%.1f): "+
						"try a fresh fingerprint run or lower discovery.score_threshold",
						cfg.Discovery.ScoreThreshold)
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Favored creators: %d\n", summary.Favored)
			fmt.Fprintf(out, "Records scanned:  %d\n", summary.Scanned)
			fmt.Fprintf(out, "Candidates:       %d\n", len(summary.Results))
			fmt.Fprintf(out, "Written to:       %s\n", summary.OutputPath)

			if topFlag > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderResultsTable(summary.Results, topFlag))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogFlag, "catalog", "", "Catalog JSONL path (overrides config)")
	cmd.Flags().StringVar(&filmsFlag, "films", "", "Personal film list CSV path (overrides config)")
	cmd.Flags().StringVar(&lexiconFlag, "lexicon", "", "Lexicon CSV path (defaults to the latest fingerprint)")
	cmd.Flags().StringVar(&outputFlag, "output-dir", "", "Output directory (overrides config)")
	cmd.Flags().IntVar(&topFlag, "top", 0, "Render the top N candidates after the run")
	return cmd
}

func renderResultsTable(results []discovery.Result, limit int) string {
	if limit > len(results) {
		limit = len(results)
	}
	rows := make([][]string, 0, limit)
	for _, result := range results[:limit] {
		legacy := ""
		if result.Legacy {
			legacy = "yes"
		}
		rows = append(rows, []string{
			result.Name,
			strconv.Itoa(result.Year),
			strconv.FormatFloat(result.Score, 'f', 2, 64),
			legacy,
			strings.Join(result.Evidence, ", "),
		})
	}
	return renderTable(
		[]string{"Name", "Year", "Score", "Legacy", "Evidence"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft, alignLeft},
	)
}

func applyPathOverrides(cfg *config.Config, catalog, films, outputDir string) error {
	if catalog != "" {
		cfg.Paths.Catalog = expandedOrRaw(catalog)
	}
	if films != "" {
		cfg.Paths.FilmsCSV = expandedOrRaw(films)
	}
	if outputDir != "" {
		cfg.Paths.OutputDir = expandedOrRaw(outputDir)
		// Directories were created when the config loaded; an override
		// needs its own pass so a fresh output location exists too.
		return cfg.EnsureDirectories()
	}
	return nil
}

func expandedOrRaw(pathValue string) string {
	expanded, err := config.ExpandPath(pathValue)
	if err != nil {
		return pathValue
	}
	return expanded
}

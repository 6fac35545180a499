package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"whitemask/internal/fingerprint"
	"whitemask/internal/pipeline"
)

func newFingerprintCommand(ctx *commandContext) *cobra.Command {
	var catalogFlag string
	var filmsFlag string
	var outputFlag string
	var topFlag int

	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Mine the motif lexicon from your film history",
		Long: `Streams the catalog once, matching records against your personal film
list, and learns which motifs distinguish your liked films from the rest of
the catalog. The resulting lexicon is written to the output directory as
whitemask_fingerprint_latest.csv plus a timestamped copy.`,
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

			progress, finish := newScanProgress("Mining catalog")
			summary, err := pipeline.RunFingerprint(cmd.Context(), cfg, logger, progress)
			finish()
			if err != nil {
				if errors.Is(err, fingerprint.ErrNoMotifs) {
					return fmt.Errorf("no motifs survived filtering: "+
						"either too few catalog records matched your film list "+
						"(%s), or the frequency/diversity floors are too strict", cfg.Paths.FilmsCSV)
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Liked films matched: %d\n", summary.Liked)
			fmt.Fprintf(out, "Baseline sample:     %d\n", summary.Baseline)
			fmt.Fprintf(out, "Lexicon motifs:      %d\n", len(summary.Entries))
			fmt.Fprintf(out, "Written to:          %s\n", summary.OutputPath)

			if topFlag > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderLexiconTable(summary.Entries, topFlag))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogFlag, "catalog", "", "Catalog JSONL path (overrides config)")
	cmd.Flags().StringVar(&filmsFlag, "films", "", "Personal film list CSV path (overrides config)")
	cmd.Flags().StringVar(&outputFlag, "output-dir", "", "Output directory (overrides config)")
	cmd.Flags().IntVar(&topFlag, "top", 0, "Render the top N motifs after the run")
	return cmd
}

func renderLexiconTable(entries []fingerprint.Entry, limit int) string {
	if limit > len(entries) {
		limit = len(entries)
	}
	rows := make([][]string, 0, limit)
	for _, entry := range entries[:limit] {
		rows = append(rows, []string{
			entry.Motif,
			strconv.FormatFloat(entry.Score, 'f', 3, 64),
			strconv.Itoa(entry.Directors),
			strconv.Itoa(entry.LikedFreq),
		})
	}
	return renderTable(
		[]string{"Motif", "Score", "Directors", "Liked"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
	)
}

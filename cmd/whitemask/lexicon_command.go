package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"whitemask/internal/fingerprint"
)

func newLexiconCommand(ctx *commandContext) *cobra.Command {
	var lexiconFlag string
	var topFlag int

	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Show the top motifs from the current lexicon",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path := lexiconFlag
			if path == "" {
				path = cfg.LexiconPath()
			}
			entries, err := fingerprint.ReadLexicon(path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("no lexicon at %s: run \"whitemask fingerprint\" first", path)
				}
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Lexicon is empty.")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Lexicon: %s (%d motifs)\n\n", path, len(entries))
			fmt.Fprintln(out, renderLexiconTable(entries, topFlag))
			return nil
		},
	}

	cmd.Flags().StringVar(&lexiconFlag, "lexicon", "", "Lexicon CSV path (defaults to the latest fingerprint)")
	cmd.Flags().IntVar(&topFlag, "top", 25, "Number of motifs to render")
	return cmd
}

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"whitemask/internal/runs"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent fingerprint and discovery runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := runs.Open(cfg.LedgerPath())
			if err != nil {
				return err
			}
			defer store.Close()

			recent, err := store.Recent(cmd.Context(), limitFlag)
			if err != nil {
				return err
			}
			if len(recent) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderRunsTable(recent))
			return nil
		},
	}

	cmd.Flags().IntVar(&limitFlag, "limit", 20, "Maximum number of runs to list")
	return cmd
}

func renderRunsTable(recent []runs.Run) string {
	rows := make([][]string, 0, len(recent))
	for _, run := range recent {
		rows = append(rows, []string{
			shortRunID(run.ID),
			run.Kind,
			run.StartedAt.Local().Format("2006-01-02 15:04"),
			runDuration(run),
			strconv.Itoa(run.LikedCount),
			strconv.Itoa(run.BaselineCount),
			strconv.Itoa(run.EmittedCount),
			run.Status,
		})
	}
	return renderTable(
		[]string{"Run", "Kind", "Started", "Duration", "Liked", "Baseline", "Emitted", "Status"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft},
	)
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func runDuration(run runs.Run) string {
	if run.FinishedAt.IsZero() || run.FinishedAt.Before(run.StartedAt) {
		return "-"
	}
	return run.FinishedAt.Sub(run.StartedAt).Round(time.Second).String()
}

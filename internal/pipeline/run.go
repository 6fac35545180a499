package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"whitemask/internal/runs"
)

// finalizeRun records a run's outcome in the ledger. An emptyErr marker maps
// to the distinct "empty" status so operators can tell "nothing survived"
// from a hard failure. Ledger write failures are logged, never fatal: the
// computed artifact matters more than its bookkeeping.
func finalizeRun(ctx context.Context, store *runs.Store, run *runs.Run, logger *slog.Logger, runErr, emptyErr error, fill func()) {
	fill()
	switch {
	case runErr == nil:
		run.Status = runs.StatusOK
	case errors.Is(runErr, emptyErr):
		run.Status = runs.StatusEmpty
		run.Note = runErr.Error()
	default:
		run.Status = runs.StatusFailed
		run.Note = runErr.Error()
	}
	// The ledger row should survive cancellation of the run itself.
	if err := store.Finish(context.WithoutCancel(ctx), run); err != nil {
		logger.Warn("run ledger update failed", "run", run.ID, "error", err)
	}
}

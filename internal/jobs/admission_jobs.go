package jobs

import (
	"context"

	"potluck-backend/internal/logger"
)

// ExpireHolds sweeps stale pending holds into the EXPIRED state. Each row's
// transition is its own compare-and-swap, so the sweep runs safely alongside
// live approvals and cancellations, and a back-to-back run matches nothing.
func (jr *JobRunner) ExpireHolds() {
	jr.runWithRecovery("ExpireHolds", func() {
		count, err := jr.admission.ExpireHolds(context.Background())
		if err != nil {
			logger.Error("Hold expiry sweep failed", "error", err)
			return
		}
		logger.Info("Hold expiry sweep finished", "expired", count)
	})
}

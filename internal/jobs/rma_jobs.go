package jobs

import (
	"context"
	"time"

	"rma-portal-backend/internal/logger"
)

// RemindStalePending emails every staff member a digest of RMAs that
// have sat in pending longer than the configured window.
func (jr *JobRunner) RemindStalePending() {
	jr.runWithRecovery("RemindStalePending", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		stale, err := jr.store.RMARepository.ListStalePending(ctx, int32(jr.config.RMA.StalePendingDays))
		if err != nil {
			logger.Error("Failed to list stale pending RMAs", "error", err)
			return
		}
		if len(stale) == 0 {
			logger.Info("No stale pending RMAs")
			return
		}

		staff, err := jr.store.StaffRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list staff for digest", "error", err)
			return
		}

		sent := 0
		for _, u := range staff {
			if !u.IsActive {
				continue
			}
			if err := jr.services.Email.SendStalePendingDigest(ctx, u.Email, u.Name, stale); err != nil {
				logger.Error("Failed to send stale pending digest", "staff_id", u.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Stale pending digest sent", "rmas", len(stale), "recipients", sent)
	})
}

// PurgeExpiredUploads removes pending attachment rows (and their
// stored files) whose submission never arrived within the grace
// window.
func (jr *JobRunner) PurgeExpiredUploads() {
	jr.runWithRecovery("PurgeExpiredUploads", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		purged, err := jr.services.Attachments.PurgeExpired(ctx, int32(jr.config.RMA.UploadGraceHours))
		if err != nil {
			logger.Error("Failed to purge expired uploads", "error", err)
			return
		}
		logger.Info("Expired uploads purged", "count", purged)
	})
}

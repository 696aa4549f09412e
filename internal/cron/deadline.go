package cron

import (
	"log"
	"time"

	"github.com/nsu-ctrg/grant-review/internal/application"
)

// StartDeadlineMonitor runs the periodic sweeps: expiring overdue revision
// windows, reminding PIs and reviewers of approaching deadlines. Each pass is
// independent; a failing sweep is logged and retried next tick.
func StartDeadlineMonitor(lifecycle *application.LifecycleService, interval time.Duration) {
	go func() {
		log.Printf("Starting deadline monitor (interval: %s)", interval)

		runSweeps(lifecycle)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			runSweeps(lifecycle)
		}
	}()
}

func runSweeps(lifecycle *application.LifecycleService) {
	expired, err := lifecycle.RunDeadlineSweep()
	if err != nil {
		log.Printf("Deadline sweep failed: %v", err)
	} else if expired > 0 {
		log.Printf("Deadline sweep expired %d revision window(s)", expired)
	}

	if sent, err := lifecycle.SendRevisionReminders(); err != nil {
		log.Printf("Revision reminders failed: %v", err)
	} else if sent > 0 {
		log.Printf("Sent %d revision reminder(s)", sent)
	}

	if sent, err := lifecycle.SendReviewReminders(); err != nil {
		log.Printf("Review reminders failed: %v", err)
	} else if sent > 0 {
		log.Printf("Sent %d review reminder(s)", sent)
	}
}

// StartAuditCleanupTask prunes audit rows past the retention horizon, daily.
func StartAuditCleanupTask(auditService *application.AuditService, retentionDays int) {
	go func() {
		log.Printf("Starting background audit cleanup task (retention: %d days)", retentionDays)

		auditService.CleanupOldLogs(retentionDays)

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			auditService.CleanupOldLogs(retentionDays)
		}
	}()
}

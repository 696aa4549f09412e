package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nsu-ctrg/grant-review/internal/application"
	"github.com/nsu-ctrg/grant-review/internal/config"
	"github.com/nsu-ctrg/grant-review/internal/config/db"
	"github.com/nsu-ctrg/grant-review/internal/cron"
	"github.com/nsu-ctrg/grant-review/internal/notify"
	"github.com/nsu-ctrg/grant-review/internal/repository"
)

// The sweeper runs the deadline monitor and audit retention tasks in a
// process separate from the API, so reminder emails are not duplicated
// when the API is scaled horizontally.
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize database connection and run migrations
	db.Init()

	repos := repository.NewRepositories(db.DB)
	notifier := notify.NewSMTPNotifier()
	services := application.New(repos, notifier)

	interval := time.Duration(config.SweepIntervalMinutes) * time.Minute
	cron.StartDeadlineMonitor(services.Lifecycle, interval)
	cron.StartAuditCleanupTask(services.Audit, config.AuditRetentionDays)

	log.Printf("Deadline sweeper started, interval %s", interval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Sweeper shutting down")
}

// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the dispatch service.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Runs every second to drain the notification
// queue and deliver mails rendered from delivery lifecycle events
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required collaborators
//	jobManager := jobs.NewJobManager(queue, mailer, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "* * * * * *" which means it
// runs every second. Each tick drains the queue completely, so a burst of
// transitions is delivered within the next tick.
//
// # Error Handling
//
// Notification delivery is best-effort. Pop and send failures are logged
// and never propagate back to the transitions that produced the events.
package jobs

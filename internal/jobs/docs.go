// Package jobs provides scheduled background tasks for the fulfillment service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// SnapshotFlushJob exports the in-memory store and saves it to the PostgreSQL
// archive on a cron schedule (by default once a minute). Overlapping runs are
// skipped.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(flushHandler, cfg.SnapshotFlushSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// On shutdown: stop scheduling and flush one last time.
//	defer jobManager.StopAll(ctx)
//
// # Scheduling
//
// Schedules use the six-field cron format with seconds, e.g. "0 */5 * * * *".
//
// # Error Handling
//
// A failed flush is logged; the previous archive stays intact and the next run
// tries again.
package jobs

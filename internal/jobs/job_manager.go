package jobs

import (
	"context"
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	snapshotFlushJob *SnapshotFlushJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(flusher SnapshotFlusher, flushSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		snapshotFlushJob: NewSnapshotFlushJob(flusher, flushSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.snapshotFlushJob.Start(); err != nil {
		return fmt.Errorf("failed to start snapshot flush job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and runs a final flush so that no committed
// change is lost on shutdown.
func (jm *JobManager) StopAll(ctx context.Context) error {
	jm.snapshotFlushJob.Stop()
	return jm.snapshotFlushJob.Flush(ctx)
}

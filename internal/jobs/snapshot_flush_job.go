package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSnapshotFlushSchedule flushes once a minute, at second zero.
const DefaultSnapshotFlushSchedule = "0 * * * * *"

// SnapshotFlusher writes the current store to the archive.
type SnapshotFlusher interface {
	Handle(ctx context.Context, cmd commands.FlushSnapshotCommand) error
}

// SnapshotFlushJob periodically copies the in-memory store to the archive.
type SnapshotFlushJob struct {
	handler  SnapshotFlusher
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSnapshotFlushJob creates a flush job. schedule is a cron expression with a
// seconds field; an empty schedule means DefaultSnapshotFlushSchedule.
func NewSnapshotFlushJob(handler SnapshotFlusher, schedule string, logger *slog.Logger) *SnapshotFlushJob {
	if schedule == "" {
		schedule = DefaultSnapshotFlushSchedule
	}
	return &SnapshotFlushJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "snapshot_flush_job"),
	}
}

// Start schedules the flush.
func (j *SnapshotFlushJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.Flush(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot flush job started", "schedule", j.schedule)
	return nil
}

// Flush runs one flush immediately. Errors are logged and returned.
func (j *SnapshotFlushJob) Flush(ctx context.Context) error {
	if err := j.handler.Handle(ctx, commands.NewFlushSnapshotCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Snapshot flush failed", "error", err)
		return err
	}
	return nil
}

// Stop stops scheduling and waits for a running flush to finish.
func (j *SnapshotFlushJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Snapshot flush job stopped")
}

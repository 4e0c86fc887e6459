package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	archiveFlushSchedule = "*/30 * * * * *"
	archiveFlushTimeout  = 20 * time.Second
)

// Flusher saves the whole order table.
type Flusher interface {
	Flush(ctx context.Context) error
}

// ArchiveFlushJob re-saves the order table every 30 seconds so a save lost to a
// database outage is repaired without waiting for the next order change.
type ArchiveFlushJob struct {
	flusher Flusher
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewArchiveFlushJob(flusher Flusher, logger *slog.Logger) *ArchiveFlushJob {
	return &ArchiveFlushJob{
		flusher: flusher,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With("component", "archive_flush_job"),
	}
}

func (j *ArchiveFlushJob) Start() error {
	if _, err := j.cron.AddFunc(archiveFlushSchedule, func() {
		j.run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Archive flush job started (running every 30 seconds)")
	return nil
}

// run leaves error reporting to the flusher, which logs persistence warnings itself.
func (j *ArchiveFlushJob) run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, archiveFlushTimeout)
	defer cancel()

	_ = j.flusher.Flush(ctx)
}

func (j *ArchiveFlushJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Archive flush job stopped")
}

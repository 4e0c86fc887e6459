package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"orderhub/internal/core/application/usecases/commands"
)

type job interface {
	Start() error
	Stop()
}

type namedJob struct {
	name string
	job  job
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs []namedJob
}

// NewJobManager creates a new job manager with all required jobs.
// flusher may be nil when orders are not archived; the flush job is then skipped.
func NewJobManager(
	pruneChatHandler commands.PruneChatCommandHandler,
	chatRetention time.Duration,
	flusher Flusher,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{
		jobs: []namedJob{
			{name: "chat retention", job: NewChatRetentionJob(pruneChatHandler, chatRetention, logger)},
		},
	}
	if flusher != nil {
		jm.jobs = append(jm.jobs, namedJob{name: "archive flush", job: NewArchiveFlushJob(flusher, logger)})
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.job.Start(); err != nil {
			// Stop already started jobs if this one fails
			for _, started := range jm.jobs[:i] {
				started.job.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].job.Stop()
	}
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderhub/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const chatRetentionSchedule = "0 * * * * *"

// ChatRetentionJob drops chat messages older than the retention window.
// Runs at the start of every minute.
type ChatRetentionJob struct {
	handler   commands.PruneChatCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewChatRetentionJob(
	handler commands.PruneChatCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *ChatRetentionJob {
	return &ChatRetentionJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "chat_retention_job"),
	}
}

// Start validates the retention window and schedules the job.
func (j *ChatRetentionJob) Start() error {
	cmd, err := commands.NewPruneChatCommand(j.retention)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(chatRetentionSchedule, func() {
		j.run(context.Background(), cmd)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Chat retention job started", "retention", j.retention)
	return nil
}

func (j *ChatRetentionJob) run(ctx context.Context, cmd commands.PruneChatCommand) {
	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Chat retention job failed", "error", err)
		return
	}
	if removed > 0 {
		j.logger.DebugContext(ctx, "Chat messages pruned", "removed", removed)
	}
}

// Stop stops the chat retention job.
func (j *ChatRetentionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Chat retention job stopped")
}

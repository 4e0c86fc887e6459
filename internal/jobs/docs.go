// Package jobs provides scheduled background tasks for orderhub.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ChatRetentionJob - Runs every minute and drops chat messages older than the retention window
// 2. ArchiveFlushJob - Runs every 30 seconds and re-saves the order table to the archive
//
// # Usage
//
//	jobManager := jobs.NewJobManager(pruneChatHandler, 24*time.Hour, archiveWriter, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A non-positive retention window fails StartAll
// - Archive failures are logged by the writer as persistence warnings
// - Failed job starts will stop any already running jobs
package jobs

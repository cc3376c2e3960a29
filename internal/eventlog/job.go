package eventlog

import (
	"context"
	"time"

	"github.com/windrow/farmstead/internal/logger"
)

// CleanupJob prunes old event log entries on demand
type CleanupJob struct {
	service       Service
	retentionDays int
}

// NewCleanupJob creates a cleanup job with the given retention window
func NewCleanupJob(service Service, retentionDays int) *CleanupJob {
	return &CleanupJob{
		service:       service,
		retentionDays: retentionDays,
	}
}

// Process executes one cleanup pass
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Starting event log cleanup", "retentionDays", j.retentionDays)

	start := time.Now()
	count, err := j.service.CleanupOldEntries(ctx, j.retentionDays)
	duration := time.Since(start)

	if err != nil {
		log.Error("Event log cleanup failed", "error", err, "duration", duration)
		return err
	}

	log.Info("Event log cleanup completed", "deletedCount", count, "duration", duration)
	return nil
}

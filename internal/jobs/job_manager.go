package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	purgeJob *PurgeJob
	logger   *zap.Logger
}

// NewJobManager creates a job manager. A nil purgeJob means purging is disabled.
func NewJobManager(purgeJob *PurgeJob, logger *zap.Logger) *JobManager {
	return &JobManager{
		purgeJob: purgeJob,
		logger:   logger,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.purgeJob == nil {
		jm.logger.Info("purge job disabled")
		return nil
	}

	if err := jm.purgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.purgeJob != nil {
		jm.purgeJob.Stop()
	}
}

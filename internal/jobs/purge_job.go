package jobs

import (
	"context"
	"errors"
	"time"

	"orderadmin/internal/core/application/usecases/commands"
	"orderadmin/internal/core/ports"

	"github.com/robfig/cron/v3"
	"github.com/rs/xid"
	"go.uber.org/zap"
)

const (
	// PurgeLockKey is the lock name shared by every replica running the purge.
	PurgeLockKey = "jobs:purge-soft-deleted-orders"
	// DefaultLockRefresh must stay well below the locker's lease TTL.
	DefaultLockRefresh = time.Minute
)

type purger interface {
	Handle(ctx context.Context, cmd commands.PurgeSoftDeletedOrdersCommand) (commands.PurgeReport, error)
}

// PurgeConfig controls when and how much the purge job removes.
type PurgeConfig struct {
	// Schedule is a cron expression with a leading seconds field.
	Schedule string
	// Retention is how long an order stays soft-deleted before it is purged.
	Retention time.Duration
	BatchSize int
	// LockRefresh is how often the purge lock is extended while a run is in progress.
	LockRefresh time.Duration
}

// PurgeJob periodically hard-deletes orders that were soft-deleted longer ago
// than the retention period.
type PurgeJob struct {
	handler purger
	locker  ports.OrderLocker
	config  PurgeConfig
	cron    *cron.Cron
	logger  *zap.Logger
	now     func() time.Time
}

// NewPurgeJob creates the purge job. Start must be called to schedule it.
func NewPurgeJob(handler purger, locker ports.OrderLocker, config PurgeConfig, logger *zap.Logger) *PurgeJob {
	if config.LockRefresh <= 0 {
		config.LockRefresh = DefaultLockRefresh
	}
	return &PurgeJob{
		handler: handler,
		locker:  locker,
		config:  config,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With(zap.String("component", "purge_job")),
		now:     time.Now,
	}
}

// Start schedules the job. An invalid schedule is reported here, not at run time.
func (j *PurgeJob) Start() error {
	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		_, _ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("purge job started",
		zap.String("schedule", j.config.Schedule),
		zap.Duration("retention", j.config.Retention),
		zap.Int("batch_size", j.config.BatchSize),
	)
	return nil
}

// Stop unschedules the job and waits for a running purge to finish.
func (j *PurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("purge job stopped")
}

// RunOnce purges one batch. When another replica holds the purge lock the run is
// skipped and an empty report is returned without error. The lock is refreshed
// every LockRefresh while the batch runs; if a refresh fails the run stops before
// the next order and the refresh error is returned.
func (j *PurgeJob) RunOnce(ctx context.Context) (commands.PurgeReport, error) {
	logger := j.logger.With(zap.String("run_id", xid.New().String()))

	lock, err := j.locker.Obtain(ctx, PurgeLockKey)
	if err != nil {
		if errors.Is(err, ports.ErrLockNotObtained) {
			logger.Debug("purge skipped, another replica is running it")
			return commands.PurgeReport{}, nil
		}
		logger.Error("purge lock failed", zap.Error(err))
		return commands.PurgeReport{}, err
	}
	defer func() {
		if releaseErr := lock.Release(context.WithoutCancel(ctx)); releaseErr != nil {
			logger.Warn("purge lock release failed", zap.Error(releaseErr))
		}
	}()

	cmd, err := commands.NewPurgeSoftDeletedOrdersCommand(j.now().Add(-j.config.Retention), j.config.BatchSize)
	if err != nil {
		logger.Error("purge misconfigured", zap.Error(err))
		return commands.PurgeReport{}, err
	}

	runCtx, stopRefresh := j.keepAlive(ctx, lock, logger)
	defer stopRefresh()

	report, err := j.handler.Handle(runCtx, cmd)
	if err != nil && ctx.Err() == nil && runCtx.Err() != nil {
		err = context.Cause(runCtx)
	}
	if err != nil {
		logger.Error("purge failed", zap.Error(err), zap.Int("purged", report.Purged))
		return report, err
	}

	logger.Info("purge finished",
		zap.Time("cutoff", cmd.Cutoff()),
		zap.Int("purged", report.Purged),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

// keepAlive refreshes lock until the returned stop func is called. A failed
// refresh cancels the returned context with the refresh error as cause.
func (j *PurgeJob) keepAlive(ctx context.Context, lock ports.Lock, logger *zap.Logger) (context.Context, func()) {
	runCtx, cancel := context.WithCancelCause(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(j.config.LockRefresh)
		defer ticker.Stop()

		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				if err := lock.Refresh(runCtx); err != nil {
					logger.Error("purge lock refresh failed, stopping run", zap.Error(err))
					cancel(err)
					return
				}
			}
		}
	}()

	return runCtx, func() {
		cancel(nil)
		<-done
	}
}

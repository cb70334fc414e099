// Package jobs provides scheduled background tasks for order administration.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// PurgeJob hard-deletes orders that have been soft-deleted for longer than the
// configured retention. Each order is removed in its own transaction through the
// same handler that serves permanent deletion requests, so an order and its
// details always disappear together.
//
// # Usage
//
//	purgeJob := jobs.NewPurgeJob(purgeHandler, locker, jobs.PurgeConfig{
//		Schedule:  "0 0 3 * * *",
//		Retention: 30 * 24 * time.Hour,
//		BatchSize: 500,
//	}, logger)
//
//	jobManager := jobs.NewJobManager(purgeJob, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Coordination
//
// Every run first obtains PurgeLockKey from the OrderLocker. With several
// replicas only the one holding the lock purges; the others skip that run.
// Every run is logged with its own xid run id.
package jobs

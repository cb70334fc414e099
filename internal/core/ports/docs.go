// Package ports defines the contracts between the order administration use cases
// and infrastructure: repositories, the unit of work acting as transaction manager,
// a cross-replica locker and the post-commit event publisher.
package ports

import "errors"

var (
	// ErrLockNotObtained is returned by OrderLocker.Obtain when the key is held elsewhere.
	ErrLockNotObtained = errors.New("lock not obtained")
	// ErrLockLost is returned by Lock.Refresh when the lease expired before it was extended.
	ErrLockLost = errors.New("lock lost")
)

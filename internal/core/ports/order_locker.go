package ports

import "context"

// Lock is a held mutual-exclusion lease. Holders of long runs call Refresh well
// within the lease TTL; a lease that already expired yields ErrLockLost.
type Lock interface {
	Refresh(ctx context.Context) error
	Release(ctx context.Context) error
}

// OrderLocker provides mutual exclusion across service replicas, keyed by name.
// Obtain returns ErrLockNotObtained when another holder owns the key.
type OrderLocker interface {
	Obtain(ctx context.Context, key string) (Lock, error)
}

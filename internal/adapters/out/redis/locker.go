// Package redis provides cross-replica locks for background jobs.
package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"orderadmin/internal/core/ports"

	"github.com/bsm/redislock"
	goredis "github.com/redis/go-redis/v9"
)

// DefaultLockTTL bounds how long a crashed holder can block other replicas.
const DefaultLockTTL = 5 * time.Minute

var (
	_ ports.OrderLocker = (*Locker)(nil)
	_ ports.OrderLocker = (*LocalLocker)(nil)
)

type lockClient interface {
	Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error)
}

// Locker obtains leases in Redis. Obtain does not retry: a key held elsewhere
// fails fast with ports.ErrLockNotObtained.
type Locker struct {
	client lockClient
	prefix string
	ttl    time.Duration
}

func NewLocker(client goredis.UniversalClient, prefix string, ttl time.Duration) *Locker {
	return newLocker(redislock.New(client), prefix, ttl)
}

func newLocker(client lockClient, prefix string, ttl time.Duration) *Locker {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &Locker{client: client, prefix: prefix, ttl: ttl}
}

func (l *Locker) Obtain(ctx context.Context, key string) (ports.Lock, error) {
	lock, err := l.client.Obtain(ctx, l.prefix+key, l.ttl, nil)
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) {
			return nil, fmt.Errorf("%w: %s", ports.ErrLockNotObtained, key)
		}
		return nil, fmt.Errorf("obtain lock %s: %w", key, err)
	}
	return redisLock{lock: lock, ttl: l.ttl}, nil
}

type redisLock struct {
	lock *redislock.Lock
	ttl  time.Duration
}

// Refresh extends the lease by the TTL it was obtained with.
func (l redisLock) Refresh(ctx context.Context) error {
	if err := l.lock.Refresh(ctx, l.ttl, nil); err != nil {
		if errors.Is(err, redislock.ErrNotObtained) {
			return fmt.Errorf("%w: %s", ports.ErrLockLost, l.lock.Key())
		}
		return fmt.Errorf("refresh lock %s: %w", l.lock.Key(), err)
	}
	return nil
}

// Release treats an already expired lease as released.
func (l redisLock) Release(ctx context.Context) error {
	if err := l.lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
		return err
	}
	return nil
}

// LocalLocker serialises holders within one process. It is used when Redis is
// not configured, i.e. when a single replica runs.
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{held: make(map[string]struct{})}
}

func (l *LocalLocker) Obtain(_ context.Context, key string) (ports.Lock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[key]; ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrLockNotObtained, key)
	}
	l.held[key] = struct{}{}
	return &localLock{owner: l, key: key}, nil
}

type localLock struct {
	owner *LocalLocker
	key   string
	once  sync.Once
}

// Refresh is a no-op: local leases do not expire.
func (l *localLock) Refresh(context.Context) error {
	return nil
}

func (l *localLock) Release(context.Context) error {
	l.once.Do(func() {
		l.owner.mu.Lock()
		delete(l.owner.held, l.key)
		l.owner.mu.Unlock()
	})
	return nil
}

package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"orderadmin/internal/core/ports"

	"github.com/bsm/redislock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	key string
	ttl time.Duration
	err error
}

func (c *stubClient) Obtain(_ context.Context, key string, ttl time.Duration, _ *redislock.Options) (*redislock.Lock, error) {
	c.key = key
	c.ttl = ttl
	return nil, c.err
}

func TestLocker_Obtain_NotObtained(t *testing.T) {
	client := &stubClient{err: redislock.ErrNotObtained}
	locker := newLocker(client, "orderadmin:", 0)

	lock, err := locker.Obtain(t.Context(), "purge")

	require.ErrorIs(t, err, ports.ErrLockNotObtained)
	assert.Nil(t, lock)
	assert.Equal(t, "orderadmin:purge", client.key)
	assert.Equal(t, DefaultLockTTL, client.ttl)
}

func TestLocker_Obtain_ClientError(t *testing.T) {
	clientErr := errors.New("dial tcp: connection refused")
	locker := newLocker(&stubClient{err: clientErr}, "", time.Minute)

	_, err := locker.Obtain(t.Context(), "purge")

	require.ErrorIs(t, err, clientErr)
	assert.NotErrorIs(t, err, ports.ErrLockNotObtained)
}

func TestLocalLocker(t *testing.T) {
	ctx := t.Context()
	locker := NewLocalLocker()

	first, err := locker.Obtain(ctx, "purge")
	require.NoError(t, err)

	_, err = locker.Obtain(ctx, "purge")
	require.ErrorIs(t, err, ports.ErrLockNotObtained)

	other, err := locker.Obtain(ctx, "other")
	require.NoError(t, err)
	require.NoError(t, other.Release(ctx))

	require.NoError(t, first.Refresh(ctx))
	require.NoError(t, first.Release(ctx))
	require.NoError(t, first.Release(ctx))

	again, err := locker.Obtain(ctx, "purge")
	require.NoError(t, err)
	require.NoError(t, again.Release(ctx))
}

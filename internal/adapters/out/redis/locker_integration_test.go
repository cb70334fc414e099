package redis

import (
	"context"
	"testing"
	"time"

	"orderadmin/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestLocker_Redis(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Redis integration test in short mode")
	}

	ctx := t.Context()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := goredis.NewClient(&goredis.Options{Addr: endpoint})
	t.Cleanup(func() {
		_ = client.Close()
	})

	locker := NewLocker(client, "orderadmin:test:", time.Minute)

	lock, err := locker.Obtain(ctx, "purge")
	require.NoError(t, err)

	_, err = locker.Obtain(ctx, "purge")
	require.ErrorIs(t, err, ports.ErrLockNotObtained)

	require.NoError(t, lock.Refresh(ctx))
	ttl, err := client.PTTL(ctx, "orderadmin:test:purge").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, 50*time.Second)

	require.NoError(t, lock.Release(ctx))
	require.NoError(t, lock.Release(ctx))
	require.ErrorIs(t, lock.Refresh(ctx), ports.ErrLockLost)

	again, err := locker.Obtain(ctx, "purge")
	require.NoError(t, err)
	require.NoError(t, again.Release(ctx))
}

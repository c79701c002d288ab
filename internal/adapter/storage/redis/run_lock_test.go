package redis_test

import (
	"context"
	"testing"
	"time"

	"gold-settlement/internal/adapter/storage/redis"
	"gold-settlement/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLocker_SingleHolder(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	locker := redis.NewRunLocker(client)
	ctx := context.Background()

	lock, err := locker.Acquire(ctx, "reconciliation", time.Minute)
	require.NoError(t, err)

	_, err = locker.Acquire(ctx, "reconciliation", time.Minute)
	assert.ErrorIs(t, err, ports.ErrLockHeld)

	require.NoError(t, lock.Release(ctx))

	again, err := locker.Acquire(ctx, "reconciliation", time.Minute)
	require.NoError(t, err)
	require.NoError(t, again.Release(ctx))
}

func TestRunLocker_ExpiresAfterTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	locker := redis.NewRunLocker(client)
	ctx := context.Background()

	_, err := locker.Acquire(ctx, "reconciliation", time.Second)
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	lock, err := locker.Acquire(ctx, "reconciliation", time.Second)
	require.NoError(t, err)
	require.NoError(t, lock.Release(ctx))
}

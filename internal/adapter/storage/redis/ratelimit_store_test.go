package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_Allow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	clock := time.Date(2026, 10, 19, 12, 0, 5, 0, time.UTC)
	store := NewRateLimitStore(client)
	store.now = func() time.Time { return clock }
	ctx := context.Background()

	t.Run("allows requests within limit", func(t *testing.T) {
		for i := int64(1); i <= 3; i++ {
			result, err := store.Allow(ctx, "webhook:10.0.0.1", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, result.Allowed, "request %d should be allowed", i)
			assert.Equal(t, int64(3), result.Limit)
			assert.Equal(t, 3-i, result.Remaining)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		result, err := store.Allow(ctx, "webhook:10.0.0.1", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, int64(0), result.Remaining)
	})

	t.Run("different keys are independent", func(t *testing.T) {
		result, err := store.Allow(ctx, "webhook:10.0.0.2", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(4), result.Remaining)
	})

	t.Run("new window resets the counter", func(t *testing.T) {
		key := "webhook:10.0.0.3"
		_, err := store.Allow(ctx, key, 1, time.Minute)
		require.NoError(t, err)

		result, err := store.Allow(ctx, key, 1, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)

		clock = clock.Add(61 * time.Second)
		mr.FastForward(61 * time.Second)

		result, err = store.Allow(ctx, key, 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	})

	t.Run("reset at the window edge", func(t *testing.T) {
		result, err := store.Allow(ctx, "webhook:10.0.0.4", 10, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.ResetAt.After(clock))
		assert.Equal(t, 0, result.ResetAt.Second())
	})

	t.Run("counter key expires", func(t *testing.T) {
		_, err := store.Allow(ctx, "webhook:10.0.0.5", 10, time.Minute)
		require.NoError(t, err)
		keys := mr.Keys()
		require.NotEmpty(t, keys)
		for _, k := range keys {
			assert.Greater(t, mr.TTL(k), time.Duration(0), k)
		}
	})
}

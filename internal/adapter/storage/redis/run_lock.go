package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gold-settlement/internal/core/ports"

	"github.com/bsm/redislock"
	goredis "github.com/redis/go-redis/v9"
)

// RunLocker implements ports.RunLocker with a redislock lease.
type RunLocker struct {
	locker *redislock.Client
	prefix string
}

// NewRunLocker creates a Redis-backed cross-instance lock.
func NewRunLocker(client *goredis.Client) *RunLocker {
	return &RunLocker{
		locker: redislock.New(client),
		prefix: "lock:",
	}
}

// Acquire obtains key for ttl without waiting. It returns ports.ErrLockHeld
// when another instance holds it.
func (l *RunLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (ports.Releaser, error) {
	lock, err := l.locker.Obtain(ctx, l.prefix+key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ports.ErrLockHeld
	}
	if err != nil {
		return nil, fmt.Errorf("redis lock obtain: %w", err)
	}
	return lock, nil
}

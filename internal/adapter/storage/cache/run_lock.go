package cache

import (
	"context"
	"sync"
	"time"

	"gold-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

type lease struct {
	token     string
	expiresAt time.Time
}

// LocalRunLocker implements ports.RunLocker within one process. It is used
// when no shared store is configured.
type LocalRunLocker struct {
	mu     sync.Mutex
	leases *expirable.LRU[string, lease]
	now    func() time.Time
}

// NewLocalRunLocker keeps at most size leases; none outlives maxTTL.
func NewLocalRunLocker(size int, maxTTL time.Duration) *LocalRunLocker {
	return &LocalRunLocker{
		leases: expirable.NewLRU[string, lease](size, nil, maxTTL),
		now:    time.Now,
	}
}

// Acquire implements ports.RunLocker.
func (l *LocalRunLocker) Acquire(_ context.Context, key string, ttl time.Duration) (ports.Releaser, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if cur, ok := l.leases.Get(key); ok && now.Before(cur.expiresAt) {
		return nil, ports.ErrLockHeld
	}
	held := lease{token: uuid.NewString(), expiresAt: now.Add(ttl)}
	l.leases.Add(key, held)
	return &localRelease{locker: l, key: key, token: held.token}, nil
}

type localRelease struct {
	locker *LocalRunLocker
	key    string
	token  string
}

// Release drops the lease if it is still ours.
func (r *localRelease) Release(_ context.Context) error {
	r.locker.mu.Lock()
	defer r.locker.mu.Unlock()
	if cur, ok := r.locker.leases.Get(r.key); ok && cur.token == r.token {
		r.locker.leases.Remove(r.key)
	}
	return nil
}

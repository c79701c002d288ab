package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gold-settlement/internal/core/ports"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
)

// LocalRateLimiter is a fixed-window counter kept in a bounded LRU.
// Windows are not shared across instances.
type LocalRateLimiter struct {
	mu       sync.Mutex
	counters *expirable.LRU[string, int64]
	now      func() time.Time
}

// NewLocalRateLimiter tracks at most size keys; entries expire after maxWindow.
func NewLocalRateLimiter(size int, maxWindow time.Duration) *LocalRateLimiter {
	return &LocalRateLimiter{
		counters: expirable.NewLRU[string, int64](size, nil, maxWindow+time.Second),
		now:      time.Now,
	}
}

// Allow implements ports.RateLimiter.
func (l *LocalRateLimiter) Allow(_ context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	windowSecs := int64(window.Seconds())
	if windowSecs < 1 {
		windowSecs = 1
	}
	windowID := l.now().Unix() / windowSecs
	k := fmt.Sprintf("%s:%d", key, windowID)

	l.mu.Lock()
	count, _ := l.counters.Get(k)
	count++
	l.counters.Add(k, count)
	l.mu.Unlock()

	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return &ports.RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   time.Unix((windowID+1)*windowSecs, 0),
	}, nil
}

// FallbackRateLimiter uses primary and switches to secondary for a request
// when primary errors.
type FallbackRateLimiter struct {
	primary   ports.RateLimiter
	secondary ports.RateLimiter
	log       zerolog.Logger
}

// NewFallbackRateLimiter wraps primary with a local fallback.
func NewFallbackRateLimiter(primary, secondary ports.RateLimiter, log zerolog.Logger) *FallbackRateLimiter {
	return &FallbackRateLimiter{primary: primary, secondary: secondary, log: log}
}

// Allow implements ports.RateLimiter.
func (f *FallbackRateLimiter) Allow(ctx context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	res, err := f.primary.Allow(ctx, key, limit, window)
	if err == nil {
		return res, nil
	}
	f.log.Warn().Err(err).Str("key", key).Msg("shared rate limiter unavailable, using local counters")
	return f.secondary.Allow(ctx, key, limit, window)
}

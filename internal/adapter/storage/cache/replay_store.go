// Package cache holds bounded process-local caches that sit in front of the
// shared Redis store.
package cache

import (
	"context"
	"time"

	"gold-settlement/internal/core/ports"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
)

// TieredReplayStore answers from a bounded local LRU first and falls back to
// the shared store. When the shared store errors it degrades to local-only.
type TieredReplayStore struct {
	local  *expirable.LRU[string, struct{}]
	shared ports.ReplayStore
	log    zerolog.Logger
}

// NewTieredReplayStore creates a replay store holding at most size keys
// locally for ttl. shared may be nil for single-instance deployments.
func NewTieredReplayStore(size int, ttl time.Duration, shared ports.ReplayStore, log zerolog.Logger) *TieredReplayStore {
	return &TieredReplayStore{
		local:  expirable.NewLRU[string, struct{}](size, nil, ttl),
		shared: shared,
		log:    log,
	}
}

// Seen reports whether key was processed within the TTL.
func (s *TieredReplayStore) Seen(ctx context.Context, key string) (bool, error) {
	if s.local.Contains(key) {
		return true, nil
	}
	if s.shared == nil {
		return false, nil
	}
	seen, err := s.shared.Seen(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("shared replay store unavailable, using local cache")
		return false, nil
	}
	if seen {
		s.local.Add(key, struct{}{})
	}
	return seen, nil
}

// Mark records key locally and in the shared store.
func (s *TieredReplayStore) Mark(ctx context.Context, key string, ttl time.Duration) error {
	s.local.Add(key, struct{}{})
	if s.shared == nil {
		return nil
	}
	if err := s.shared.Mark(ctx, key, ttl); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("shared replay store unavailable, key kept locally")
	}
	return nil
}

// Len returns the number of locally cached keys.
func (s *TieredReplayStore) Len() int {
	return s.local.Len()
}

package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ReplayStore implements ports.ReplayStore using Redis keys with a TTL.
type ReplayStore struct {
	client *goredis.Client
	prefix string
}

// NewReplayStore creates a Redis-backed webhook replay store.
func NewReplayStore(client *goredis.Client) *ReplayStore {
	return &ReplayStore{
		client: client,
		prefix: "webhook:processed:",
	}
}

// Seen reports whether key was marked and has not yet expired.
func (s *ReplayStore) Seen(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, s.prefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis replay exists: %w", err)
	}
	return n > 0, nil
}

// Mark records key as processed for ttl.
func (s *ReplayStore) Mark(ctx context.Context, key string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+key, time.Now().UTC().Format(time.RFC3339), ttl).Err(); err != nil {
		return fmt.Errorf("redis replay set: %w", err)
	}
	return nil
}

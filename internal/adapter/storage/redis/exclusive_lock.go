package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transactions-saga/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ExclusiveLockStore implements ports.ExclusiveLockStore using Redis SET NX PX.
type ExclusiveLockStore struct {
	client *goredis.Client
	prefix string
}

// NewExclusiveLockStore creates a new Redis-backed lock store.
func NewExclusiveLockStore(client *goredis.Client) *ExclusiveLockStore {
	return &ExclusiveLockStore{
		client: client,
		prefix: "exclusiveLocks:",
	}
}

// SaveIfAbsent atomically creates the lock document if nobody holds it.
// Returns true when the caller acquired the lock.
func (s *ExclusiveLockStore) SaveIfAbsent(ctx context.Context, lock domain.ExclusiveLockDocument, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		return false, fmt.Errorf("lock %s: non positive ttl %s", lock.ID, ttl)
	}

	result, err := s.client.SetArgs(ctx, s.prefix+lock.ID, lock.Holder, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis lock acquire %s: %w", lock.ID, err)
	}
	return result == "OK", nil
}

// Delete releases a lock before its ttl elapses.
func (s *ExclusiveLockStore) Delete(ctx context.Context, lockID string) error {
	if err := s.client.Del(ctx, s.prefix+lockID).Err(); err != nil {
		return fmt.Errorf("redis lock release %s: %w", lockID, err)
	}
	return nil
}

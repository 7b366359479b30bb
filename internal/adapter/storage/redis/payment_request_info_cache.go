package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"transactions-saga/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// PaymentRequestInfoCache implements ports.PaymentRequestInfoCache using Redis.
// Entries are JSON documents under "keys:{rptId}".
type PaymentRequestInfoCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewPaymentRequestInfoCache creates a Redis-backed idempotency cache whose
// entries expire after ttl.
func NewPaymentRequestInfoCache(client *goredis.Client, ttl time.Duration) *PaymentRequestInfoCache {
	return &PaymentRequestInfoCache{
		client: client,
		prefix: "keys:",
		ttl:    ttl,
	}
}

func (c *PaymentRequestInfoCache) key(rptID domain.RptID) string {
	return c.prefix + rptID.String()
}

// Get retrieves the entry of a notice. Returns nil, nil if it does not exist.
func (c *PaymentRequestInfoCache) Get(ctx context.Context, rptID domain.RptID) (*domain.PaymentRequestInfo, error) {
	val, err := c.client.Get(ctx, c.key(rptID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis payment request info get: %w", err)
	}

	var info domain.PaymentRequestInfo
	if err := json.Unmarshal(val, &info); err != nil {
		return nil, fmt.Errorf("decoding payment request info %s: %w", rptID, err)
	}
	return &info, nil
}

// SaveIfAbsent stores the entry only if no other request created one first.
func (c *PaymentRequestInfoCache) SaveIfAbsent(ctx context.Context, info domain.PaymentRequestInfo) (bool, error) {
	val, err := json.Marshal(info)
	if err != nil {
		return false, fmt.Errorf("encoding payment request info: %w", err)
	}

	result, err := c.client.SetArgs(ctx, c.key(info.RptID), val, goredis.SetArgs{
		Mode: "NX",
		TTL:  c.ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis payment request info set nx: %w", err)
	}
	return result == "OK", nil
}

// Save overwrites the entry, last write wins.
func (c *PaymentRequestInfoCache) Save(ctx context.Context, info domain.PaymentRequestInfo) error {
	val, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encoding payment request info: %w", err)
	}
	if err := c.client.Set(ctx, c.key(info.RptID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis payment request info set: %w", err)
	}
	return nil
}

// Delete invalidates the entry of a notice.
func (c *PaymentRequestInfoCache) Delete(ctx context.Context, rptID domain.RptID) error {
	if err := c.client.Del(ctx, c.key(rptID)).Err(); err != nil {
		return fmt.Errorf("redis payment request info delete: %w", err)
	}
	return nil
}

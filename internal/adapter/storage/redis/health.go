package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

// HealthCheck implements ports.HealthChecker for the Redis instance backing
// the idempotency cache, the locks and the queues.
type HealthCheck struct {
	client *goredis.Client
}

func NewHealthCheck(client *goredis.Client) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}

func (h *HealthCheck) Name() string {
	return "redis"
}

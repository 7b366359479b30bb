package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// claimScript leases up to ARGV[2] messages visible at ARGV[1] by pushing
// their visibility to ARGV[3]. It returns payload, delivery count pairs.
var claimScript = goredis.NewScript(`
local ids = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1], 'LIMIT', 0, tonumber(ARGV[2]))
local out = {}
for _, id in ipairs(ids) do
	local payload = redis.call('HGET', KEYS[2], id)
	if payload then
		redis.call('ZADD', KEYS[1], ARGV[3], id)
		local n = redis.call('HINCRBY', KEYS[3], id, 1)
		table.insert(out, payload)
		table.insert(out, n)
	else
		redis.call('ZREM', KEYS[1], id)
	end
end
return out
`)

type queueEnvelope struct {
	ID         string       `json:"id"`
	Event      domain.Event `json:"event"`
	EnqueuedAt time.Time    `json:"enqueuedAt"`
	ExpiresAt  time.Time    `json:"expiresAt"`
}

// Queue is a delayed at-least-once queue on Redis. A sorted set scored by
// visible-at time orders the message ids; payloads live in a hash.
// It implements ports.QueueGateway and ports.QueueConsumer.
type Queue struct {
	client *goredis.Client
	prefix string
	log    zerolog.Logger
	now    func() time.Time
}

// NewQueue creates a Redis-backed queue gateway.
func NewQueue(client *goredis.Client, log zerolog.Logger) *Queue {
	return &Queue{
		client: client,
		prefix: "queue:",
		log:    log,
		now:    time.Now,
	}
}

func (q *Queue) keys(queue string) (schedule, messages, deliveries string) {
	base := q.prefix + queue
	return base + ":schedule", base + ":messages", base + ":deliveries"
}

// Send enqueues event, invisible for visibility and discarded after ttl.
func (q *Queue) Send(ctx context.Context, queue string, event domain.Event, visibility, ttl time.Duration) error {
	if visibility < 0 {
		visibility = 0
	}
	now := q.now()
	env := queueEnvelope{
		ID:         uuid.New().String(),
		Event:      event,
		EnqueuedAt: now.UTC(),
		ExpiresAt:  now.Add(ttl).UTC(),
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encoding queue message: %w", err)
	}

	schedule, messages, _ := q.keys(queue)
	_, err = q.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, messages, env.ID, payload)
		pipe.ZAdd(ctx, schedule, goredis.Z{
			Score:  float64(now.Add(visibility).UnixMilli()),
			Member: env.ID,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis queue send %s: %w", queue, err)
	}

	q.log.Debug().
		Str("queue", queue).
		Str("message_id", env.ID).
		Str("event_code", string(event.EventCode)).
		Dur("visibility", visibility).
		Msg("Event enqueued")
	return nil
}

// Receive leases up to max visible messages for lease. Expired messages are
// dropped instead of being delivered.
func (q *Queue) Receive(ctx context.Context, queue string, max int, lease time.Duration) ([]ports.QueueMessage, error) {
	now := q.now()
	schedule, messages, deliveries := q.keys(queue)

	raw, err := claimScript.Run(ctx, q.client,
		[]string{schedule, messages, deliveries},
		now.UnixMilli(), max, now.Add(lease).UnixMilli(),
	).Slice()
	if err != nil {
		return nil, fmt.Errorf("redis queue receive %s: %w", queue, err)
	}

	result := make([]ports.QueueMessage, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		payload, _ := raw[i].(string)
		count, _ := raw[i+1].(int64)

		var env queueEnvelope
		if err := json.Unmarshal([]byte(payload), &env); err != nil {
			q.log.Error().Err(err).Str("queue", queue).Msg("Dropping undecodable queue message")
			continue
		}
		if now.After(env.ExpiresAt) {
			if err := q.Delete(ctx, queue, env.ID); err != nil {
				return nil, err
			}
			q.log.Warn().Str("queue", queue).Str("message_id", env.ID).Msg("Queue message expired")
			continue
		}
		result = append(result, ports.QueueMessage{
			ID:            env.ID,
			Queue:         queue,
			Event:         env.Event,
			EnqueuedAt:    env.EnqueuedAt,
			ExpiresAt:     env.ExpiresAt,
			DeliveryCount: int(count),
		})
	}
	return result, nil
}

// Delete acknowledges a message so it is never delivered again.
func (q *Queue) Delete(ctx context.Context, queue string, messageID string) error {
	schedule, messages, deliveries := q.keys(queue)
	_, err := q.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.ZRem(ctx, schedule, messageID)
		pipe.HDel(ctx, messages, messageID)
		pipe.HDel(ctx, deliveries, messageID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis queue delete %s: %w", queue, err)
	}
	return nil
}

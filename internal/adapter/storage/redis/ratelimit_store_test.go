package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_Allow(t *testing.T) {
	_, client := newTestClient(t)
	store := NewRateLimitStore(client)
	clock := &fakeClock{now: time.Date(2026, 3, 10, 12, 0, 10, 0, time.UTC)}
	store.now = clock.Now
	ctx := context.Background()

	t.Run("allows requests within limit", func(t *testing.T) {
		for i := int64(1); i <= 3; i++ {
			result, err := store.Allow(ctx, "10.0.0.1:activation", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, result.Allowed, "request %d should be allowed", i)
			assert.Equal(t, 3-i, result.Remaining)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		result, err := store.Allow(ctx, "10.0.0.1:activation", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, int64(0), result.Remaining)
		assert.Equal(t, time.Date(2026, 3, 10, 12, 1, 0, 0, time.UTC), result.ResetAt)
	})

	t.Run("different keys are independent", func(t *testing.T) {
		result, err := store.Allow(ctx, "10.0.0.2:activation", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(4), result.Remaining)
	})

	t.Run("next window starts from zero", func(t *testing.T) {
		clock.Advance(time.Minute)
		result, err := store.Allow(ctx, "10.0.0.1:activation", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(2), result.Remaining)
	})
}

func TestRateLimitStore_KeyExpires(t *testing.T) {
	s, client := newTestClient(t)
	store := NewRateLimitStore(client)
	store.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }

	_, err := store.Allow(context.Background(), "10.0.0.1:authorization", 1, time.Minute)
	require.NoError(t, err)

	key := "ratelimit:10.0.0.1:authorization:" + "1773144000"
	assert.True(t, s.Exists(key))
	s.FastForward(62 * time.Second)
	assert.False(t, s.Exists(key))
}

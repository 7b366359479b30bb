package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	"transactions-saga/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRptID = domain.RptID("77777777777302016723749670035")

func TestPaymentRequestInfoCache_GetMissing(t *testing.T) {
	_, client := newTestClient(t)
	cache := NewPaymentRequestInfoCache(client, 15*time.Minute)

	info, err := cache.Get(context.Background(), testRptID)
	assert.NoError(t, err)
	assert.Nil(t, info)
}

func TestPaymentRequestInfoCache_SaveAndGet(t *testing.T) {
	s, client := newTestClient(t)
	cache := NewPaymentRequestInfoCache(client, 15*time.Minute)
	ctx := context.Background()

	activation := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	info := domain.PaymentRequestInfo{
		RptID:          testRptID,
		IdempotencyKey: domain.IdempotencyKey{IssuerFiscalCode: "77777777777", RandomSuffix: "AbCdE12345"},
		PaymentToken:   "token-1",
		Amount:         12000,
		Description:    "TARI",
		ActivationDate: &activation,
	}
	require.NoError(t, cache.Save(ctx, info))

	got, err := cache.Get(ctx, testRptID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, info.IdempotencyKey, got.IdempotencyKey)
	assert.Equal(t, "token-1", got.PaymentToken)
	assert.True(t, activation.Equal(*got.ActivationDate))

	assert.True(t, s.Exists("keys:"+testRptID.String()))
	assert.Equal(t, 15*time.Minute, s.TTL("keys:"+testRptID.String()))
}

func TestPaymentRequestInfoCache_SaveIfAbsent_SingleWinner(t *testing.T) {
	_, client := newTestClient(t)
	cache := NewPaymentRequestInfoCache(client, time.Minute)
	ctx := context.Background()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := cache.SaveIfAbsent(ctx, domain.PaymentRequestInfo{RptID: testRptID})
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestPaymentRequestInfoCache_TTLExpiry(t *testing.T) {
	s, client := newTestClient(t)
	cache := NewPaymentRequestInfoCache(client, time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, domain.PaymentRequestInfo{RptID: testRptID}))
	s.FastForward(2 * time.Second)

	got, err := cache.Get(ctx, testRptID)
	assert.NoError(t, err)
	assert.Nil(t, got, "expired entry should return nil")
}

func TestPaymentRequestInfoCache_Delete(t *testing.T) {
	_, client := newTestClient(t)
	cache := NewPaymentRequestInfoCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, domain.PaymentRequestInfo{RptID: testRptID, PaymentToken: "tok"}))
	require.NoError(t, cache.Delete(ctx, testRptID))
	require.NoError(t, cache.Delete(ctx, testRptID), "deleting a missing entry is not an error")

	got, err := cache.Get(ctx, testRptID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPaymentRequestInfoCache_CorruptedEntry(t *testing.T) {
	s, client := newTestClient(t)
	cache := NewPaymentRequestInfoCache(client, time.Minute)

	require.NoError(t, s.Set("keys:"+testRptID.String(), "not-json"))

	_, err := cache.Get(context.Background(), testRptID)
	assert.Error(t, err)
}

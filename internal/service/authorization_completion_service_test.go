package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"
	"transactions-saga/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCompletionService(history ...domain.Event) (*AuthorizationCompletionServiceImpl, *memEventStore, *memViews) {
	events := newMemEventStore(history...)
	views := newMemViews()
	svc := NewAuthorizationCompletionService(events, views, zerolog.Nop())
	svc.now = fixedClock(testNow.Add(30 * time.Second))
	return svc, events, views
}

func TestAuthorizationCompletionService_NpgExecuted(t *testing.T) {
	svc, events, views := setupCompletionService(activatedEvent(testNow, 100), npgRequestedEvent(testNow.Add(time.Second), 100, 10))
	operationTime := testNow.Add(20 * time.Second)

	event, err := svc.CompleteAuthorization(context.Background(), ports.AuthorizationOutcomeUpdate{
		TransactionID:      testTxID,
		AuthorizationCode:  strPtr("123456"),
		RRN:                strPtr("rrn-1"),
		TimestampOperation: operationTime,
		GatewayData: domain.NpgAuthorizationData{
			OperationResult: domain.NpgOperationExecuted,
			OperationID:     "op-1",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.EventCodeAuthorizationCompleted, event.EventCode)

	data := event.Data.(domain.AuthorizationCompletedData)
	assert.Equal(t, operationTime, data.TimestampOperation)
	assert.Equal(t, domain.AuthorizationOutcomeOK, data.GatewayData.AuthorizationOutcome())
	assert.Len(t, events.codes(testTxID), 3)

	view, err := views.GetByID(context.Background(), testTxID)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, domain.TransactionStatusAuthorizationCompleted, view.Status)
	require.NotNil(t, view.Fee)
	assert.Equal(t, int64(10), *view.Fee)
}

func TestAuthorizationCompletionService_DefaultsTimestamp(t *testing.T) {
	svc, _, _ := setupCompletionService(activatedEvent(testNow, 100), npgRequestedEvent(testNow.Add(time.Second), 100, 10))

	event, err := svc.CompleteAuthorization(context.Background(), ports.AuthorizationOutcomeUpdate{
		TransactionID: testTxID,
		GatewayData:   domain.NpgAuthorizationData{OperationResult: domain.NpgOperationDeclined},
	})
	require.NoError(t, err)
	data := event.Data.(domain.AuthorizationCompletedData)
	assert.Equal(t, testNow.Add(30*time.Second), data.TimestampOperation)
	assert.Equal(t, domain.AuthorizationOutcomeKO, data.GatewayData.AuthorizationOutcome())
}

func TestAuthorizationCompletionService_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		history []domain.Event
		data    domain.GatewayAuthorizationData
		code    string
	}{
		{
			name:    "not requested yet",
			history: []domain.Event{activatedEvent(testNow, 100)},
			data:    domain.NpgAuthorizationData{OperationResult: domain.NpgOperationExecuted},
			code:    apperror.CodeAlreadyProcessed,
		},
		{
			name:    "already completed",
			history: authorizedEvents(domain.NpgOperationExecuted),
			data:    domain.NpgAuthorizationData{OperationResult: domain.NpgOperationExecuted},
			code:    apperror.CodeAlreadyProcessed,
		},
		{
			name:    "gateway mismatch",
			history: []domain.Event{activatedEvent(testNow, 100), npgRequestedEvent(testNow, 100, 10)},
			data:    domain.RedirectAuthorizationData{Outcome: domain.AuthorizationOutcomeOK},
			code:    apperror.CodeInvalidRequest,
		},
		{
			name:    "unknown npg result",
			history: []domain.Event{activatedEvent(testNow, 100), npgRequestedEvent(testNow, 100, 10)},
			data:    domain.NpgAuthorizationData{OperationResult: "MAYBE"},
			code:    apperror.CodeInvalidRequest,
		},
		{
			name:    "missing outcome",
			history: []domain.Event{activatedEvent(testNow, 100), npgRequestedEvent(testNow, 100, 10)},
			code:    apperror.CodeInvalidRequest,
		},
		{
			name: "unknown transaction",
			data: domain.NpgAuthorizationData{OperationResult: domain.NpgOperationExecuted},
			code: apperror.CodeTransactionNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, events, _ := setupCompletionService(tt.history...)
			before := len(events.codes(testTxID))

			_, err := svc.CompleteAuthorization(context.Background(), ports.AuthorizationOutcomeUpdate{
				TransactionID: testTxID,
				GatewayData:   tt.data,
			})
			require.Error(t, err)
			assert.True(t, apperror.HasCode(err, tt.code), "got %v", err)
			assert.Len(t, events.codes(testTxID), before)
		})
	}
}

func TestAuthorizationCompletionService_ConcurrentOutcomes(t *testing.T) {
	events := newBarrierEventStore(2, activatedEvent(testNow, 100), npgRequestedEvent(testNow.Add(time.Second), 100, 10))
	svc := NewAuthorizationCompletionService(events, newMemViews(), zerolog.Nop())
	svc.now = fixedClock(testNow.Add(30 * time.Second))

	results := []domain.NpgOperationResult{domain.NpgOperationExecuted, domain.NpgOperationDeclined}
	errs := make([]error, len(results))
	var wg sync.WaitGroup
	for i, result := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.CompleteAuthorization(context.Background(), ports.AuthorizationOutcomeUpdate{
				TransactionID: testTxID,
				GatewayData:   domain.NpgAuthorizationData{OperationResult: result},
			})
		}()
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case apperror.HasCode(err, apperror.CodeAlreadyProcessed):
			rejected++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)

	codes := events.codes(testTxID)
	require.Len(t, codes, 3)
	assert.Equal(t, domain.EventCodeAuthorizationCompleted, codes[2])
	tx, err := domain.Reduce(events.events[testTxID])
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusAuthorizationCompleted, tx.Status())
}

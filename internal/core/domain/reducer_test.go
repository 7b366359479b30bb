package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func activatedEvent(id TransactionID) Event {
	return NewEvent(id, ActivatedData{
		PaymentNotices: []PaymentNotice{{
			RptID:        "77777777777302016723749670035",
			PaymentToken: "token-1",
			Amount:       100,
			Description:  "TARI 2026",
		}},
		ClientID:                    ClientIDCheckout,
		PaymentTokenValiditySeconds: 900,
	}, testNow)
}

func authRequestedEvent(id TransactionID) Event {
	return NewEvent(id, AuthorizationRequestedData{
		Amount:                 100,
		Fee:                    10,
		PspID:                  "PSP01",
		PaymentTypeCode:        "CP",
		AuthorizationRequestID: "auth-req-1",
		AuthorizationURL:       "https://gateway.example/pay",
		GatewayData:            NpgAuthorizationRequestedData{SessionID: "session-1", Brand: "VISA"},
	}, testNow.Add(time.Minute))
}

func authCompletedEvent(id TransactionID, result NpgOperationResult) Event {
	return NewEvent(id, AuthorizationCompletedData{
		AuthorizationCode:  strPtr("123456"),
		RRN:                strPtr("rrn-1"),
		TimestampOperation: testNow.Add(2 * time.Minute),
		GatewayData:        NpgAuthorizationData{OperationResult: result, OperationID: "op-1"},
	}, testNow.Add(2*time.Minute))
}

func TestReduce_Empty(t *testing.T) {
	tx, err := Reduce(nil)
	require.NoError(t, err)
	assert.Equal(t, EmptyTransaction{}, tx)
}

func TestReduce_HappyPath(t *testing.T) {
	id := NewTransactionID()
	events := []Event{
		activatedEvent(id),
		authRequestedEvent(id),
		authCompletedEvent(id, NpgOperationExecuted),
		NewEvent(id, ClosureRequestedData{}, testNow.Add(3*time.Minute)),
		NewEvent(id, ClosedData{Outcome: ClosureOutcomeOK}, testNow.Add(4*time.Minute)),
		NewEvent(id, UserReceiptRequestedData{Outcome: ReceiptOutcomeOK, Language: "IT"}, testNow.Add(5*time.Minute)),
	}

	expected := []TransactionStatus{
		TransactionStatusActivated,
		TransactionStatusAuthorizationRequested,
		TransactionStatusAuthorizationCompleted,
		TransactionStatusClosureRequested,
		TransactionStatusClosed,
		TransactionStatusNotificationRequested,
	}
	for i := range events {
		tx, err := Reduce(events[:i+1])
		require.NoError(t, err)
		assert.Equal(t, expected[i], tx.Status(), "after %s", events[i].EventCode)
		assert.Equal(t, id, tx.TransactionID())
	}

	tx, err := Reduce(events)
	require.NoError(t, err)
	receipt, ok := tx.(TransactionWithUserReceiptRequested)
	require.True(t, ok)
	assert.Equal(t, ClosureOutcomeOK, receipt.ClosureOutcome)
	assert.Equal(t, int64(100), receipt.ActivationData().Amount())
	assert.Equal(t, int64(10), receipt.AuthorizationData().Fee)
	assert.Equal(t, AuthorizationOutcomeOK, receipt.CompletionData().Outcome())
}

func TestReduce_Deterministic(t *testing.T) {
	id := NewTransactionID()
	events := []Event{
		activatedEvent(id),
		authRequestedEvent(id),
		authCompletedEvent(id, NpgOperationExecuted),
		NewEvent(id, ClosureErrorData{ErrorDescription: "timeout", Recoverable: true}, testNow.Add(3*time.Minute)),
		NewEvent(id, ClosureFailedData{Outcome: ClosureOutcomeKO}, testNow.Add(4*time.Minute)),
		NewEvent(id, RefundRequestedData{StatusBeforeRefunded: TransactionStatusClosed}, testNow.Add(5*time.Minute)),
	}

	first, err := Reduce(events)
	require.NoError(t, err)
	second, err := Reduce(events)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, TransactionStatusRefundRequested, first.Status())
}

func TestReduce_ClosureFailed(t *testing.T) {
	tests := []struct {
		name       string
		result     NpgOperationResult
		wantStatus TransactionStatus
	}{
		{"authorized payment refused by clearing node", NpgOperationExecuted, TransactionStatusClosed},
		{"declined authorization", NpgOperationDeclined, TransactionStatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := NewTransactionID()
			tx, err := Reduce([]Event{
				activatedEvent(id),
				authRequestedEvent(id),
				authCompletedEvent(id, tt.result),
				NewEvent(id, ClosureFailedData{Outcome: ClosureOutcomeKO}, testNow.Add(3*time.Minute)),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, tx.Status())
			if closed, ok := tx.(TransactionClosed); ok {
				assert.Equal(t, ClosureOutcomeKO, closed.ClosureOutcome)
			}
		})
	}
}

func TestReduce_ClosureRetryFromClosureError(t *testing.T) {
	id := NewTransactionID()
	tx, err := Reduce([]Event{
		activatedEvent(id),
		authRequestedEvent(id),
		authCompletedEvent(id, NpgOperationExecuted),
		NewEvent(id, ClosureRequestedData{}, testNow.Add(3*time.Minute)),
		NewEvent(id, ClosureErrorData{ErrorDescription: "502", Recoverable: true}, testNow.Add(4*time.Minute)),
		NewEvent(id, ClosureErrorData{ErrorDescription: "503", Recoverable: true, RetryCount: 1}, testNow.Add(5*time.Minute)),
		NewEvent(id, ClosedData{Outcome: ClosureOutcomeOK}, testNow.Add(6*time.Minute)),
	})
	require.NoError(t, err)
	assert.Equal(t, TransactionStatusClosed, tx.Status())
}

func TestReduce_ExpiredKeepsPreviousStage(t *testing.T) {
	id := NewTransactionID()
	events := []Event{
		activatedEvent(id),
		authRequestedEvent(id),
		authCompletedEvent(id, NpgOperationExecuted),
		NewEvent(id, ClosedData{Outcome: ClosureOutcomeOK}, testNow.Add(3*time.Minute)),
		NewEvent(id, ExpiredData{StatusBeforeExpiration: TransactionStatusClosed}, testNow.Add(20*time.Minute)),
	}
	tx, err := Reduce(events)
	require.NoError(t, err)
	expired, ok := tx.(TransactionExpired)
	require.True(t, ok)
	assert.Equal(t, TransactionStatusClosed, expired.StatusBeforeExpiration)
	assert.Equal(t, id, expired.TransactionID())

	tx, err = Reduce(append(events, NewEvent(id, UserReceiptRequestedData{Outcome: ReceiptOutcomeOK}, testNow.Add(21*time.Minute))))
	require.NoError(t, err)
	assert.Equal(t, TransactionStatusNotificationRequested, tx.Status())
}

func TestReduce_UserCanceled(t *testing.T) {
	id := NewTransactionID()
	tx, err := Reduce([]Event{activatedEvent(id), NewEvent(id, UserCanceledData{}, testNow.Add(time.Minute))})
	require.NoError(t, err)
	assert.Equal(t, TransactionStatusCancellationRequested, tx.Status())
}

func TestReduce_InvalidTransitions(t *testing.T) {
	id := NewTransactionID()
	tests := []struct {
		name   string
		events []Event
	}{
		{"authorization before activation", []Event{authRequestedEvent(id)}},
		{"double activation", []Event{activatedEvent(id), activatedEvent(id)}},
		{"closure before authorization completed", []Event{activatedEvent(id), authRequestedEvent(id), NewEvent(id, ClosedData{Outcome: ClosureOutcomeOK}, testNow)}},
		{"refund on activated", []Event{activatedEvent(id), NewEvent(id, RefundRequestedData{}, testNow)}},
		{"receipt on activated", []Event{activatedEvent(id), NewEvent(id, UserReceiptRequestedData{}, testNow)}},
		{"cancel after authorization", []Event{activatedEvent(id), authRequestedEvent(id), NewEvent(id, UserCanceledData{}, testNow)}},
		{"expired before activation", []Event{NewEvent(id, ExpiredData{}, testNow)}},
		{"event of another transaction", []Event{activatedEvent(id), authRequestedEvent(NewTransactionID())}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := Reduce(tt.events)
			assert.Nil(t, tx)
			assert.True(t, errors.Is(err, ErrInvalidTransition))
		})
	}
}

func TestClosable(t *testing.T) {
	id := NewTransactionID()
	base := []Event{activatedEvent(id), authRequestedEvent(id), authCompletedEvent(id, NpgOperationExecuted)}

	tests := []struct {
		name  string
		extra []Event
		want  bool
	}{
		{"authorization completed", nil, true},
		{"closure requested", []Event{NewEvent(id, ClosureRequestedData{}, testNow)}, true},
		{"closure error", []Event{NewEvent(id, ClosureErrorData{}, testNow)}, true},
		{"closed", []Event{NewEvent(id, ClosedData{Outcome: ClosureOutcomeOK}, testNow)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := append(append([]Event{}, base...), tt.extra...)
			tx, err := Reduce(events)
			require.NoError(t, err)
			_, ok := Closable(tx)
			assert.Equal(t, tt.want, ok)
		})
	}
}

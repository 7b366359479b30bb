package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTxID = domain.TransactionID("8f9c2a64d1e54b0c9a7e3f21b6d4c8e0")

func eventColumns() []string {
	return []string{"id", "transaction_id", "event_code", "creation_date", "data"}
}

func activatedEvent(now time.Time) domain.Event {
	return domain.NewEvent(testTxID, domain.ActivatedData{
		PaymentNotices: []domain.PaymentNotice{{
			RptID:        "77777777777302016723749670035",
			PaymentToken: "b1d2f5c8a9e04f7d",
			Amount:       12000,
			Description:  "TARI 2026",
		}},
		ClientID:                    domain.ClientIDCheckout,
		PaymentTokenValiditySeconds: 900,
	}, now)
}

func TestEventStore_Append(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewEventStore(mock)
	event := activatedEvent(time.Now())
	payload, err := json.Marshal(event.Data)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO transaction_events").
		WithArgs(event.ID, testTxID.String(), 1, string(domain.EventCodeActivated), event.CreationDate, payload).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = store.Append(context.Background(), event, 0)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStore_Append_VersionConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewEventStore(mock)
	canceled := domain.NewEvent(testTxID, domain.UserCanceledData{}, time.Now())
	mock.ExpectExec("INSERT INTO transaction_events").
		WithArgs(canceled.ID, testTxID.String(), 2, string(domain.EventCodeUserCanceled), canceled.CreationDate, []byte("{}")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_transaction_events_version"})

	err = store.Append(context.Background(), canceled, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrVersionConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStore_Append_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewEventStore(mock)
	mock.ExpectExec("INSERT INTO transaction_events").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	err = store.Append(context.Background(), activatedEvent(time.Now()), 0)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrVersionConflict)
	assert.Contains(t, err.Error(), "insert transaction event")
}

func TestEventStore_FindAllOrdered(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewEventStore(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	activated := activatedEvent(now)
	activatedPayload, err := json.Marshal(activated.Data)
	require.NoError(t, err)

	canceledID := uuid.New()
	rows := pgxmock.NewRows(eventColumns()).
		AddRow(activated.ID, testTxID.String(), string(domain.EventCodeActivated), now, activatedPayload).
		AddRow(canceledID, testTxID.String(), string(domain.EventCodeUserCanceled), now.Add(time.Second), []byte("{}"))

	mock.ExpectQuery("SELECT (.+) FROM transaction_events WHERE transaction_id").
		WithArgs(testTxID.String()).
		WillReturnRows(rows)

	events, err := store.FindAllOrdered(context.Background(), testTxID)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, activated.ID, events[0].ID)
	data, ok := events[0].Data.(domain.ActivatedData)
	require.True(t, ok)
	assert.Equal(t, int64(12000), data.PaymentNotices[0].Amount)
	assert.Equal(t, domain.ClientIDCheckout, data.ClientID)

	assert.Equal(t, canceledID, events[1].ID)
	assert.Equal(t, domain.UserCanceledData{}, events[1].Data)

	tx, err := domain.Reduce(events)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusCancellationRequested, tx.Status())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStore_FindAllOrdered_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewEventStore(mock)
	mock.ExpectQuery("SELECT (.+) FROM transaction_events").
		WithArgs(testTxID.String()).
		WillReturnRows(pgxmock.NewRows(eventColumns()))

	events, err := store.FindAllOrdered(context.Background(), testTxID)
	assert.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventStore_FindAllOrdered_UnknownCode(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewEventStore(mock)
	rows := pgxmock.NewRows(eventColumns()).
		AddRow(uuid.New(), testTxID.String(), "TRANSACTION_UNKNOWN_EVENT", time.Now(), []byte("{}"))
	mock.ExpectQuery("SELECT (.+) FROM transaction_events").
		WithArgs(testTxID.String()).
		WillReturnRows(rows)

	_, err = store.FindAllOrdered(context.Background(), testTxID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown event code")
}

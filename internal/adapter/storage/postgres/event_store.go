package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// EventStore implements ports.EventStore on the transaction_events table.
// Rows are never updated or deleted.
type EventStore struct {
	pool Pool
}

// NewEventStore creates a new EventStore.
func NewEventStore(pool Pool) *EventStore {
	return &EventStore{pool: pool}
}

// Append inserts event as version expectedVersion+1 of its transaction.
// A concurrent append of the same version violates
// UNIQUE (transaction_id, version) and yields ports.ErrVersionConflict.
func (s *EventStore) Append(ctx context.Context, event domain.Event, expectedVersion int) error {
	payload, err := json.Marshal(event.Data)
	if err != nil {
		return fmt.Errorf("encoding %s payload: %w", event.EventCode, err)
	}

	query := `INSERT INTO transaction_events (id, transaction_id, version, event_code, creation_date, data)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = s.pool.Exec(ctx, query,
		event.ID, event.TransactionID.String(), expectedVersion+1, string(event.EventCode), event.CreationDate, payload,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s at version %d", ports.ErrVersionConflict, event.TransactionID, expectedVersion+1)
		}
		return fmt.Errorf("insert transaction event: %w", err)
	}
	return nil
}

// FindAllOrdered returns the events of a transaction in append order.
func (s *EventStore) FindAllOrdered(ctx context.Context, transactionID domain.TransactionID) ([]domain.Event, error) {
	query := `SELECT id, transaction_id, event_code, creation_date, data
		FROM transaction_events WHERE transaction_id = $1
		ORDER BY version ASC`

	rows, err := s.pool.Query(ctx, query, transactionID.String())
	if err != nil {
		return nil, fmt.Errorf("query transaction events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			id           uuid.UUID
			txID         string
			code         string
			creationDate time.Time
			payload      []byte
		)
		if err := rows.Scan(&id, &txID, &code, &creationDate, &payload); err != nil {
			return nil, fmt.Errorf("scan transaction event: %w", err)
		}

		data, err := domain.DecodeEventData(domain.EventCode(code), payload)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", id, err)
		}
		events = append(events, domain.Event{
			ID:            id,
			TransactionID: domain.TransactionID(txID),
			EventCode:     domain.EventCode(code),
			CreationDate:  creationDate.UTC(),
			Data:          data,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction events: %w", err)
	}
	return events, nil
}

package ports

import (
	"context"
	"errors"
	"time"

	"transactions-saga/internal/core/domain"
)

// ErrVersionConflict is returned by EventStore.Append when the log of the
// transaction moved past the version the caller folded.
var ErrVersionConflict = errors.New("event log version conflict")

// EventStore is the append-only transaction event log.
type EventStore interface {
	// Append stores event as version expectedVersion+1 of its transaction.
	Append(ctx context.Context, event domain.Event, expectedVersion int) error
	// FindAllOrdered returns every event of the transaction in creation order.
	FindAllOrdered(ctx context.Context, transactionID domain.TransactionID) ([]domain.Event, error)
}

// TransactionView is the read-model row projected from the folded aggregate.
type TransactionView struct {
	TransactionID domain.TransactionID
	Status        domain.TransactionStatus
	ClientID      domain.ClientID
	RptIDs        []string
	Amount        int64
	Fee           *int64
	CreationDate  time.Time
	UpdatedAt     time.Time
}

// TransactionViewRepository persists the read-model projection.
type TransactionViewRepository interface {
	Upsert(ctx context.Context, view TransactionView) error
	GetByID(ctx context.Context, transactionID domain.TransactionID) (*TransactionView, error)
}

// PaymentRequestInfoCache is the idempotency cache keyed by rptId.
type PaymentRequestInfoCache interface {
	// Get returns nil, nil when the notice is not cached.
	Get(ctx context.Context, rptID domain.RptID) (*domain.PaymentRequestInfo, error)
	// SaveIfAbsent stores info only when no entry exists for its rptId.
	SaveIfAbsent(ctx context.Context, info domain.PaymentRequestInfo) (bool, error)
	Save(ctx context.Context, info domain.PaymentRequestInfo) error
	Delete(ctx context.Context, rptID domain.RptID) error
}

// ExclusiveLockStore grants short lived admission records.
type ExclusiveLockStore interface {
	// SaveIfAbsent returns true when the lock was acquired.
	SaveIfAbsent(ctx context.Context, lock domain.ExclusiveLockDocument, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, lockID string) error
}

// QueueMessage is a delivered message of the outbound queue.
type QueueMessage struct {
	ID            string
	Queue         string
	Event         domain.Event
	EnqueuedAt    time.Time
	ExpiresAt     time.Time
	DeliveryCount int
}

// QueueGateway publishes saga events for the next step.
type QueueGateway interface {
	// Send makes event visible to consumers after visibility and drops it once ttl elapses.
	Send(ctx context.Context, queue string, event domain.Event, visibility, ttl time.Duration) error
}

// QueueConsumer reads messages published through a QueueGateway.
// Delivery is at-least-once: a received message reappears after the lease
// unless it is deleted.
type QueueConsumer interface {
	Receive(ctx context.Context, queue string, max int, lease time.Duration) ([]QueueMessage, error)
	Delete(ctx context.Context, queue string, messageID string) error
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"
	"transactions-saga/pkg/apperror"

	"github.com/rs/zerolog"
)

const defaultActivationPollInterval = 100 * time.Millisecond

// QueueNames are the outbound queues the saga steps publish to.
type QueueNames struct {
	Activated              string
	AuthorizationRequested string
	Closure                string
	Refund                 string
	Notifications          string
	Cancellation           string
}

// SagaConfig holds the timing and routing parameters shared by the saga steps.
type SagaConfig struct {
	PaymentTokenValidity             time.Duration
	TransientQueueTTL                time.Duration
	AuthorizationRequestedVisibility time.Duration
	ClosureRetryInterval             time.Duration
	ClosureSoftTimeoutOffset         time.Duration
	ActivationParallelism            int
	// ActivationWaitTimeout bounds both the activation lock and how long a
	// concurrent request waits for the winner's payment token.
	ActivationWaitTimeout      time.Duration
	ActivationPollInterval     time.Duration
	SendReceiptAfterExpiration bool
	TokenAudience              string
	Queues                     QueueNames
}

func (c SagaConfig) activationPollInterval() time.Duration {
	if c.ActivationPollInterval > 0 {
		return c.ActivationPollInterval
	}
	return defaultActivationPollInterval
}

func (c SagaConfig) activationParallelism() int {
	if c.ActivationParallelism > 0 {
		return c.ActivationParallelism
	}
	return 1
}

// eventJournal reconstructs aggregates from the event store and appends the
// events produced by a step. Every step goes through it.
type eventJournal struct {
	events ports.EventStore
	views  ports.TransactionViewRepository
	log    zerolog.Logger
}

func newEventJournal(events ports.EventStore, views ports.TransactionViewRepository, log zerolog.Logger) eventJournal {
	return eventJournal{events: events, views: views, log: log}
}

// snapshot is an aggregate together with the position of the log it was
// folded from. version counts the events applied; last is the newest one.
type snapshot struct {
	tx      domain.Transaction
	version int
	last    domain.Event
}

func emptySnapshot() snapshot {
	return snapshot{tx: domain.EmptyTransaction{}}
}

// load folds the event log of a transaction.
func (j eventJournal) load(ctx context.Context, transactionID domain.TransactionID) (snapshot, error) {
	events, err := j.events.FindAllOrdered(ctx, transactionID)
	if err != nil {
		return snapshot{}, apperror.InternalError(fmt.Errorf("load events of %s: %w", transactionID, err))
	}
	if len(events) == 0 {
		return snapshot{}, apperror.ErrTransactionNotFound(transactionID.String())
	}

	tx, err := domain.Reduce(events)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			return snapshot{}, apperror.ErrInvalidTransition(err)
		}
		return snapshot{}, apperror.InternalError(err)
	}
	return snapshot{tx: tx, version: len(events), last: events[len(events)-1]}, nil
}

// append stores event on top of current and refreshes the read model.
// The store rejects the event when another writer appended after current
// was loaded; the caller then gets AlreadyProcessed, as if its guard had
// seen the newer log. The projection is best effort.
func (j eventJournal) append(ctx context.Context, current snapshot, event domain.Event) (snapshot, error) {
	tx, err := domain.Apply(current.tx, event)
	if err != nil {
		return snapshot{}, apperror.ErrInvalidTransition(err)
	}
	if err := j.events.Append(ctx, event, current.version); err != nil {
		if errors.Is(err, ports.ErrVersionConflict) {
			j.log.Warn().Err(err).
				Str("transaction_id", event.TransactionID.String()).
				Str("event_code", string(event.EventCode)).
				Msg("concurrent append rejected")
			return snapshot{}, apperror.ErrAlreadyProcessed(event.TransactionID.String(), string(current.tx.Status()))
		}
		return snapshot{}, apperror.InternalError(fmt.Errorf("append %s: %w", event.EventCode, err))
	}
	next := snapshot{tx: tx, version: current.version + 1, last: event}

	if j.views != nil {
		if view, ok := projectView(tx, event.CreationDate); ok {
			if err := j.views.Upsert(ctx, view); err != nil {
				j.log.Warn().Err(err).
					Str("transaction_id", event.TransactionID.String()).
					Str("event_code", string(event.EventCode)).
					Msg("transaction view projection failed")
			}
		}
	}
	return next, nil
}

func projectView(tx domain.Transaction, updatedAt time.Time) (ports.TransactionView, bool) {
	source := tx
	if expired, ok := tx.(domain.TransactionExpired); ok {
		source = expired.Previous
	}
	activated, ok := source.(domain.Activated)
	if !ok {
		return ports.TransactionView{}, false
	}

	data := activated.ActivationData()
	rptIDs := make([]string, 0, len(data.PaymentNotices))
	for _, n := range data.PaymentNotices {
		rptIDs = append(rptIDs, n.RptID.String())
	}

	view := ports.TransactionView{
		TransactionID: tx.TransactionID(),
		Status:        tx.Status(),
		ClientID:      data.ClientID,
		RptIDs:        rptIDs,
		Amount:        data.Amount(),
		CreationDate:  data.CreationDate,
		UpdatedAt:     updatedAt,
	}
	if auth, ok := source.(domain.AuthorizationRequested); ok {
		fee := auth.AuthorizationData().Fee
		view.Fee = &fee
	}
	return view, true
}

func alreadyProcessed(tx domain.Transaction) error {
	return apperror.ErrAlreadyProcessed(tx.TransactionID().String(), string(tx.Status()))
}

// rejectAndRepublish is the guard failure of a step that appends code and
// then publishes it. When the log still ends with that event, its publish may
// have failed after the append, so the event is sent again before the
// duplicate is rejected.
func rejectAndRepublish(ctx context.Context, queue ports.QueueGateway, name string, snap snapshot, code domain.EventCode, visibility, ttl time.Duration) error {
	if snap.last.EventCode != code {
		return alreadyProcessed(snap.tx)
	}
	if err := queue.Send(ctx, name, snap.last, max(visibility, 0), ttl); err != nil {
		return apperror.InternalError(fmt.Errorf("republish %s: %w", code, err))
	}
	return alreadyProcessed(snap.tx)
}

package service

import (
	"context"
	"fmt"
	"time"

	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"
	"transactions-saga/pkg/apperror"

	"github.com/rs/zerolog"
)

// CancellationServiceImpl implements ports.CancellationService.
type CancellationServiceImpl struct {
	journal eventJournal
	queue   ports.QueueGateway
	cfg     SagaConfig
	log     zerolog.Logger
	now     func() time.Time
}

func NewCancellationService(events ports.EventStore, views ports.TransactionViewRepository, queue ports.QueueGateway, cfg SagaConfig, log zerolog.Logger) *CancellationServiceImpl {
	return &CancellationServiceImpl{
		journal: newEventJournal(events, views, log),
		queue:   queue,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
	}
}

// Cancel records that the user abandoned the transaction before authorization.
func (s *CancellationServiceImpl) Cancel(ctx context.Context, transactionID domain.TransactionID) (*domain.Event, error) {
	snap, err := s.journal.load(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if _, ok := snap.tx.(domain.TransactionActivated); !ok {
		return nil, rejectAndRepublish(ctx, s.queue, s.cfg.Queues.Cancellation, snap, domain.EventCodeUserCanceled, 0, s.cfg.TransientQueueTTL)
	}

	event := domain.NewEvent(transactionID, domain.UserCanceledData{}, s.now())
	if _, err := s.journal.append(ctx, snap, event); err != nil {
		return nil, err
	}
	if err := s.queue.Send(ctx, s.cfg.Queues.Cancellation, event, 0, s.cfg.TransientQueueTTL); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("publish user canceled event: %w", err))
	}

	s.log.Info().Str("transaction_id", transactionID.String()).Msg("transaction canceled by user")
	return &event, nil
}

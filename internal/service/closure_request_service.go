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

// ClosureRequestServiceImpl implements ports.ClosureRequestService.
type ClosureRequestServiceImpl struct {
	journal eventJournal
	queue   ports.QueueGateway
	cfg     SagaConfig
	log     zerolog.Logger
	now     func() time.Time
}

func NewClosureRequestService(events ports.EventStore, views ports.TransactionViewRepository, queue ports.QueueGateway, cfg SagaConfig, log zerolog.Logger) *ClosureRequestServiceImpl {
	return &ClosureRequestServiceImpl{
		journal: newEventJournal(events, views, log),
		queue:   queue,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
	}
}

// RequestClosure hands a completed authorization over to the closure consumer.
func (s *ClosureRequestServiceImpl) RequestClosure(ctx context.Context, transactionID domain.TransactionID) (*domain.Event, error) {
	snap, err := s.journal.load(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if _, ok := snap.tx.(domain.TransactionAuthorizationCompleted); !ok {
		return nil, rejectAndRepublish(ctx, s.queue, s.cfg.Queues.Closure, snap, domain.EventCodeClosureRequested, 0, s.cfg.TransientQueueTTL)
	}

	event := domain.NewEvent(transactionID, domain.ClosureRequestedData{}, s.now())
	if _, err := s.journal.append(ctx, snap, event); err != nil {
		return nil, err
	}
	if err := s.queue.Send(ctx, s.cfg.Queues.Closure, event, 0, s.cfg.TransientQueueTTL); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("publish closure requested event: %w", err))
	}

	s.log.Info().Str("transaction_id", transactionID.String()).Msg("closure requested")
	return &event, nil
}

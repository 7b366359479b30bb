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

// UserReceiptServiceImpl implements ports.UserReceiptService.
type UserReceiptServiceImpl struct {
	journal eventJournal
	queue   ports.QueueGateway
	cfg     SagaConfig
	log     zerolog.Logger
	now     func() time.Time
}

func NewUserReceiptService(events ports.EventStore, views ports.TransactionViewRepository, queue ports.QueueGateway, cfg SagaConfig, log zerolog.Logger) *UserReceiptServiceImpl {
	return &UserReceiptServiceImpl{
		journal: newEventJournal(events, views, log),
		queue:   queue,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
	}
}

// RequestUserReceipt asks the notification service to send the payment receipt.
func (s *UserReceiptServiceImpl) RequestUserReceipt(ctx context.Context, req ports.UserReceiptRequest) (*domain.Event, error) {
	if req.Outcome != domain.ReceiptOutcomeOK && req.Outcome != domain.ReceiptOutcomeKO {
		return nil, apperror.ErrInvalidRequest(fmt.Sprintf("unknown receipt outcome %q", req.Outcome))
	}

	snap, err := s.journal.load(ctx, req.TransactionID)
	if err != nil {
		return nil, err
	}
	if !s.receiptAllowed(snap.tx) {
		return nil, rejectAndRepublish(ctx, s.queue, s.cfg.Queues.Notifications, snap, domain.EventCodeUserReceiptRequested, 0, s.cfg.TransientQueueTTL)
	}

	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = s.now().UTC()
	}
	event := domain.NewEvent(req.TransactionID, domain.UserReceiptRequestedData{
		Outcome:     req.Outcome,
		Language:    req.Language,
		PaymentDate: paymentDate,
	}, s.now())

	if _, err := s.journal.append(ctx, snap, event); err != nil {
		return nil, err
	}
	if err := s.queue.Send(ctx, s.cfg.Queues.Notifications, event, 0, s.cfg.TransientQueueTTL); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("publish user receipt requested event: %w", err))
	}

	s.log.Info().
		Str("transaction_id", req.TransactionID.String()).
		Str("outcome", string(req.Outcome)).
		Msg("user receipt requested")
	return &event, nil
}

func (s *UserReceiptServiceImpl) receiptAllowed(tx domain.Transaction) bool {
	if _, ok := domain.ClosedWithOutcomeOK(tx); ok {
		return true
	}
	if expired, ok := tx.(domain.TransactionExpired); ok && s.cfg.SendReceiptAfterExpiration {
		_, ok := domain.ClosedWithOutcomeOK(expired.Previous)
		return ok
	}
	return false
}

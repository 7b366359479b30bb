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

// ClosureServiceImpl implements ports.ClosureService.
type ClosureServiceImpl struct {
	journal eventJournal
	cache   ports.PaymentRequestInfoCache
	nodo    ports.ClearingNode
	queue   ports.QueueGateway
	tracer  ports.Tracer
	cfg     SagaConfig
	log     zerolog.Logger
	now     func() time.Time
}

// NewClosureService creates a new ClosureServiceImpl.
func NewClosureService(
	events ports.EventStore,
	views ports.TransactionViewRepository,
	cache ports.PaymentRequestInfoCache,
	nodo ports.ClearingNode,
	queue ports.QueueGateway,
	tracer ports.Tracer,
	cfg SagaConfig,
	log zerolog.Logger,
) *ClosureServiceImpl {
	return &ClosureServiceImpl{
		journal: newEventJournal(events, views, log),
		cache:   cache,
		nodo:    nodo,
		queue:   queue,
		tracer:  tracer,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
	}
}

// Close sends the close-payment request and records its result. A failed
// call is not an error for the caller: it becomes a ClosureError event,
// rescheduled while the payment tokens are still usable when recoverable.
// A transaction past closure only gets the refund and invalidation a previous
// attempt left unfinished.
func (s *ClosureServiceImpl) Close(ctx context.Context, transactionID domain.TransactionID) (*domain.Event, error) {
	snap, err := s.journal.load(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	tx := snap.tx
	completed, ok := domain.Closable(tx)
	if !ok {
		return s.resume(ctx, snap)
	}
	log := s.log.With().Str("transaction_id", transactionID.String()).Logger()

	authOutcome := completed.Completion.Outcome()
	resp, callErr := s.nodo.ClosePayment(ctx, closePaymentRequest(completed, tx.Status()))

	var (
		data        domain.EventData
		recoverable bool
		refund      bool
	)
	if callErr == nil {
		if authOutcome == domain.AuthorizationOutcomeOK && resp.Outcome == domain.ClosureOutcomeOK {
			data = domain.ClosedData{Outcome: resp.Outcome}
		} else {
			data = domain.ClosureFailedData{Outcome: resp.Outcome}
		}
		refund = authOutcome == domain.AuthorizationOutcomeOK && resp.Outcome == domain.ClosureOutcomeKO
		s.tracer.ClosureAttempted(ports.TraceOutcomeOK, resp.Outcome)
	} else {
		recoverable = ports.IsRecoverable(callErr)
		data = closureErrorData(tx, callErr, recoverable)
		refund = authOutcome == domain.AuthorizationOutcomeOK && !recoverable
		s.tracer.ClosureAttempted(ports.TraceOutcomeError, domain.ClosureOutcomeKO)
		log.Warn().Err(callErr).Bool("recoverable", recoverable).Msg("close payment failed")
	}

	event := domain.NewEvent(transactionID, data, s.now())
	next, err := s.journal.append(ctx, snap, event)
	if err != nil {
		return nil, err
	}

	if callErr != nil && recoverable {
		if err := s.scheduleRetry(ctx, completed.TransactionActivated, event); err != nil {
			return nil, err
		}
	}
	if refund {
		if _, err := s.requestRefund(ctx, next); err != nil {
			return nil, err
		}
	}
	s.invalidateNotices(ctx, completed.PaymentNotices)

	log.Info().Str("event_code", string(event.EventCode)).Str("status", string(next.tx.Status())).Msg("closure attempted")
	return &event, nil
}

// resume completes a closure whose outcome is already recorded: a KO closure
// of an authorized payment still owes its refund, and a refund that is the
// last event may never have been published.
func (s *ClosureServiceImpl) resume(ctx context.Context, snap snapshot) (*domain.Event, error) {
	switch t := snap.tx.(type) {
	case domain.TransactionClosed:
		if t.ClosureOutcome != domain.ClosureOutcomeKO || t.Completion.Outcome() != domain.AuthorizationOutcomeOK {
			break
		}
		refund, err := s.requestRefund(ctx, snap)
		if err != nil {
			return nil, err
		}
		s.invalidateNotices(ctx, t.PaymentNotices)
		return &refund, nil
	case domain.TransactionWithRefundRequested:
		if snap.last.EventCode != domain.EventCodeRefundRequested || !closureOutcomeStatus(t.StatusBeforeRefunded) {
			break
		}
		if err := s.publishRefund(ctx, snap.last); err != nil {
			return nil, err
		}
		s.invalidateNotices(ctx, t.PaymentNotices)
	}
	return nil, alreadyProcessed(snap.tx)
}

func closureOutcomeStatus(status domain.TransactionStatus) bool {
	return status == domain.TransactionStatusClosed || status == domain.TransactionStatusClosureError
}

// scheduleRetry republishes a recoverable closure error while the retry can
// still land before the soft expiration of the payment tokens.
func (s *ClosureServiceImpl) scheduleRetry(ctx context.Context, activated domain.TransactionActivated, event domain.Event) error {
	visibility, ok := retryVisibility(activated.TokenExpiresAt(), s.cfg.ClosureSoftTimeoutOffset, s.cfg.ClosureRetryInterval, s.now())
	if !ok {
		s.log.Warn().
			Str("transaction_id", activated.ID.String()).
			Msg("closure retry skipped: payment tokens about to expire")
		return nil
	}
	if err := s.queue.Send(ctx, s.cfg.Queues.Closure, event, visibility, s.cfg.TransientQueueTTL); err != nil {
		return apperror.InternalError(fmt.Errorf("publish closure retry: %w", err))
	}
	s.log.Info().
		Str("transaction_id", activated.ID.String()).
		Dur("visibility", visibility).
		Msg("closure retry scheduled")
	return nil
}

// retryVisibility returns min(interval, softEnd-now) when now precedes
// softEnd = validityEnd - softOffset.
func retryVisibility(validityEnd time.Time, softOffset, interval time.Duration, now time.Time) (time.Duration, bool) {
	softEnd := validityEnd.Add(-softOffset)
	if !now.Before(softEnd) {
		return 0, false
	}
	return min(interval, softEnd.Sub(now)), true
}

func (s *ClosureServiceImpl) requestRefund(ctx context.Context, snap snapshot) (domain.Event, error) {
	tx := snap.tx
	event := domain.NewEvent(tx.TransactionID(), domain.RefundRequestedData{StatusBeforeRefunded: tx.Status()}, s.now())
	if _, err := s.journal.append(ctx, snap, event); err != nil {
		return domain.Event{}, err
	}
	if err := s.publishRefund(ctx, event); err != nil {
		return domain.Event{}, err
	}
	s.log.Info().
		Str("transaction_id", tx.TransactionID().String()).
		Str("status_before_refund", string(tx.Status())).
		Msg("refund requested")
	return event, nil
}

func (s *ClosureServiceImpl) publishRefund(ctx context.Context, event domain.Event) error {
	if err := s.queue.Send(ctx, s.cfg.Queues.Refund, event, 0, s.cfg.TransientQueueTTL); err != nil {
		return apperror.InternalError(fmt.Errorf("publish refund requested event: %w", err))
	}
	return nil
}

// invalidateNotices drops the cached activation of every notice so a new
// transaction activates them again.
func (s *ClosureServiceImpl) invalidateNotices(ctx context.Context, notices []domain.PaymentNotice) {
	for _, n := range notices {
		if err := s.cache.Delete(ctx, n.RptID); err != nil {
			s.log.Warn().Err(err).Str("rpt_id", n.RptID.String()).Msg("payment request info invalidation failed")
		}
	}
}

func closureErrorData(tx domain.Transaction, callErr error, recoverable bool) domain.ClosureErrorData {
	data := domain.ClosureErrorData{
		ErrorDescription: callErr.Error(),
		Recoverable:      recoverable,
	}
	var upstream *ports.UpstreamError
	if errors.As(callErr, &upstream) && upstream.StatusCode > 0 {
		status := upstream.StatusCode
		data.HTTPStatusCode = &status
	}
	if previous, ok := tx.(domain.TransactionWithClosureError); ok {
		data.RetryCount = previous.ClosureError.RetryCount + 1
	}
	return data
}

func closePaymentRequest(t domain.TransactionAuthorizationCompleted, status domain.TransactionStatus) ports.ClosePaymentRequest {
	auth := t.Authorization
	completion := t.Completion
	amount := t.Amount()

	notices := make([]ports.ClosePaymentNotice, 0, len(t.PaymentNotices))
	for _, n := range t.PaymentNotices {
		notices = append(notices, ports.ClosePaymentNotice{
			RptID:        n.RptID,
			PaymentToken: n.PaymentToken,
			Amount:       n.Amount,
			TransferList: n.TransferList,
		})
	}

	details := ports.ClosePaymentDetails{
		TransactionStatus:      string(status),
		CreationDate:           t.CreationDate,
		AuthorizationRequestID: auth.AuthorizationRequestID,
		AuthorizationCode:      completion.AuthorizationCode,
		RRN:                    completion.RRN,
		PspBusinessName:        auth.PspBusinessName,
		PaymentMethodName:      auth.PaymentMethodName,
	}
	switch gw := auth.GatewayData.(type) {
	case domain.NpgAuthorizationRequestedData:
		details.Gateway = domain.GatewayNPG
		details.Brand = gw.Brand
		details.LogoURL = gw.LogoURL
	case domain.RedirectAuthorizationRequestedData:
		details.Gateway = domain.GatewayRedirect
		details.LogoURL = gw.LogoURL
	}
	switch gw := completion.GatewayData.(type) {
	case domain.NpgAuthorizationData:
		details.ErrorCode = gw.ErrorCode
	case domain.RedirectAuthorizationData:
		details.ErrorCode = gw.ErrorCode
	}

	return ports.ClosePaymentRequest{
		TransactionID:      t.ID,
		PaymentTokens:      t.PaymentTokens(),
		Notices:            notices,
		Outcome:            completion.Outcome(),
		Amount:             amount,
		Fee:                auth.Fee,
		TotalAmount:        amount + auth.Fee,
		TimestampOperation: completion.TimestampOperation,
		PspID:              auth.PspID,
		PaymentTypeCode:    auth.PaymentTypeCode,
		BrokerName:         auth.BrokerName,
		PspChannelCode:     auth.PspChannelCode,
		Details:            details,
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"
	"transactions-saga/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuthorizationServiceImpl implements ports.AuthorizationService.
type AuthorizationServiceImpl struct {
	journal        eventJournal
	locks          ports.ExclusiveLockStore
	paymentMethods ports.PaymentMethodsClient
	pipelines      []ports.AuthorizationPipeline
	queue          ports.QueueGateway
	tracer         ports.Tracer
	cfg            SagaConfig
	log            zerolog.Logger
	now            func() time.Time
}

// NewAuthorizationService creates a new AuthorizationServiceImpl racing the given pipelines.
func NewAuthorizationService(
	events ports.EventStore,
	views ports.TransactionViewRepository,
	locks ports.ExclusiveLockStore,
	paymentMethods ports.PaymentMethodsClient,
	pipelines []ports.AuthorizationPipeline,
	queue ports.QueueGateway,
	tracer ports.Tracer,
	cfg SagaConfig,
	log zerolog.Logger,
) *AuthorizationServiceImpl {
	return &AuthorizationServiceImpl{
		journal:        newEventJournal(events, views, log),
		locks:          locks,
		paymentMethods: paymentMethods,
		pipelines:      pipelines,
		queue:          queue,
		tracer:         tracer,
		cfg:            cfg,
		log:            log,
		now:            time.Now,
	}
}

// RequestAuthorization sends the authorization request to the gateway that
// accepts it. It runs at most once per transaction: the exclusive lock lives
// as long as the payment tokens.
func (s *AuthorizationServiceImpl) RequestAuthorization(ctx context.Context, req ports.AuthorizationRequest) (result *ports.AuthorizationResult, err error) {
	var gateway domain.GatewayType
	if req.Details != nil {
		gateway = req.Details.Gateway()
	}
	defer func() {
		outcome := ports.TraceOutcomeOK
		if err != nil {
			outcome = ports.TraceOutcomeError
		}
		s.tracer.AuthorizationRequested(gateway, req.PaymentTypeCode, outcome)
	}()

	snap, err := s.journal.load(ctx, req.TransactionID)
	if err != nil {
		return nil, err
	}
	activated, ok := snap.tx.(domain.TransactionActivated)
	if !ok {
		// The timeout message keeps the delay it was first given.
		visibility := s.cfg.AuthorizationRequestedVisibility - s.now().Sub(snap.last.CreationDate)
		return nil, rejectAndRepublish(ctx, s.queue, s.cfg.Queues.AuthorizationRequested, snap,
			domain.EventCodeAuthorizationRequested, visibility, s.cfg.TransientQueueTTL)
	}
	if req.Details == nil {
		return nil, apperror.ErrInvalidRequest("authorization details are required")
	}

	now := s.now()
	if !now.Before(activated.TokenExpiresAt()) {
		return nil, apperror.ErrPaymentTokenExpired(req.TransactionID.String())
	}
	if req.Amount != activated.Amount() {
		return nil, apperror.ErrInvalidRequest(fmt.Sprintf(
			"requested amount %d does not match the payment notices total %d", req.Amount, activated.Amount()))
	}

	var session *ports.CardSession
	if cards, ok := req.Details.(domain.CardsAuthorizationDetails); ok {
		session, err = s.paymentMethods.UpdateSession(ctx, req.PaymentInstrumentID, cards.OrderID, req.TransactionID)
		if err != nil {
			return nil, apperror.ErrBadGateway("payment-methods", err)
		}
	}

	correlationID := uuid.New()
	lock := domain.ExclusiveLockDocument{
		ID:     "auth-request-" + req.TransactionID.String(),
		Holder: correlationID.String(),
	}
	acquired, err := s.locks.SaveIfAbsent(ctx, lock, activated.TokenExpiresAt().Sub(now))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("acquire authorization lock: %w", err))
	}
	if !acquired {
		return nil, apperror.ErrLockNotAcquired(lock.ID)
	}

	gwResult, err := s.race(ctx, ports.GatewayAuthorizationRequest{
		Transaction:         activated,
		CorrelationID:       correlationID,
		Amount:              req.Amount,
		Fee:                 req.Fee,
		PaymentInstrumentID: req.PaymentInstrumentID,
		PspID:               req.PspID,
		PaymentTypeCode:     req.PaymentTypeCode,
		PaymentMethodName:   req.PaymentMethodName,
		Language:            req.Language,
		Details:             req.Details,
		CardSession:         session,
	})
	if err != nil {
		s.log.Error().Err(err).
			Str("transaction_id", req.TransactionID.String()).
			Str("correlation_id", correlationID.String()).
			Msg("authorization request failed")
		return nil, err
	}
	gateway = gwResult.Gateway
	gatewayData, err := requestedGatewayData(gwResult, req, session)
	if err != nil {
		return nil, err
	}

	event := domain.NewEvent(req.TransactionID, domain.AuthorizationRequestedData{
		Amount:                 req.Amount,
		Fee:                    req.Fee,
		PaymentInstrumentID:    req.PaymentInstrumentID,
		PspID:                  req.PspID,
		PaymentTypeCode:        req.PaymentTypeCode,
		BrokerName:             req.BrokerName,
		PspChannelCode:         req.PspChannelCode,
		PaymentMethodName:      req.PaymentMethodName,
		PspBusinessName:        req.PspBusinessName,
		AuthorizationRequestID: gwResult.AuthorizationID,
		AuthorizationURL:       gwResult.AuthorizationURL,
		Language:               req.Language,
		GatewayData:            gatewayData,
	}, s.now())

	if _, err := s.journal.append(ctx, snap, event); err != nil {
		return nil, err
	}
	if err := s.queue.Send(ctx, s.cfg.Queues.AuthorizationRequested, event, s.cfg.AuthorizationRequestedVisibility, s.cfg.TransientQueueTTL); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("publish authorization requested event: %w", err))
	}

	s.log.Info().
		Str("transaction_id", req.TransactionID.String()).
		Str("gateway", string(gateway)).
		Str("authorization_id", gwResult.AuthorizationID).
		Msg("authorization requested")

	return &ports.AuthorizationResult{
		AuthorizationURL:       gwResult.AuthorizationURL,
		AuthorizationRequestID: gwResult.AuthorizationID,
		Event:                  event,
	}, nil
}

type pipelineAnswer struct {
	result *domain.GatewayAuthorizationResult
	err    error
}

// race dispatches req to every pipeline and returns the first non empty
// result. Dispatched calls are never canceled, even when the caller gives up.
func (s *AuthorizationServiceImpl) race(ctx context.Context, req ports.GatewayAuthorizationRequest) (*domain.GatewayAuthorizationResult, error) {
	answers := make(chan pipelineAnswer, len(s.pipelines))
	callCtx := context.WithoutCancel(ctx)
	for _, p := range s.pipelines {
		go func() {
			result, err := p.RequestAuthorization(callCtx, req)
			if err != nil {
				var appErr *apperror.AppError
				if !errors.As(err, &appErr) {
					err = apperror.ErrBadGateway(string(p.Gateway()), err)
				}
			}
			answers <- pipelineAnswer{result: result, err: err}
		}()
	}

	var firstErr error
	for range s.pipelines {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case a := <-answers:
			if a.err != nil {
				if firstErr == nil {
					firstErr = a.err
				}
				continue
			}
			if a.result != nil {
				return a.result, nil
			}
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, apperror.ErrNoGatewayMatched()
}

func requestedGatewayData(result *domain.GatewayAuthorizationResult, req ports.AuthorizationRequest, session *ports.CardSession) (domain.GatewayAuthorizationRequestedData, error) {
	switch result.Gateway {
	case domain.GatewayRedirect:
		var timeout int64
		if result.TimeoutMillis != nil {
			timeout = *result.TimeoutMillis
		}
		return domain.RedirectAuthorizationRequestedData{
			LogoURL:                         brandLogo(req.PspID),
			TransactionOutcomeTimeoutMillis: timeout,
		}, nil
	case domain.GatewayNPG:
		brand := req.PaymentMethodName
		if session != nil && session.Brand != "" {
			brand = session.Brand
		}
		var sessionID string
		if result.SessionID != nil {
			sessionID = *result.SessionID
		}
		return domain.NpgAuthorizationRequestedData{
			LogoURL:                 brandLogo(brand),
			Brand:                   brand,
			SessionID:               sessionID,
			ConfirmPaymentSessionID: result.ConfirmSessionID,
		}, nil
	}
	return nil, apperror.InternalError(fmt.Errorf("authorization answered by unsupported gateway %q", result.Gateway))
}

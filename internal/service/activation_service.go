package service

import (
	"context"
	"fmt"
	"time"

	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"
	"transactions-saga/pkg/apperror"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ActivationServiceImpl implements ports.ActivationService.
type ActivationServiceImpl struct {
	journal eventJournal
	cache   ports.PaymentRequestInfoCache
	locks   ports.ExclusiveLockStore
	nodo    ports.ClearingNode
	tokens  ports.TokenIssuer
	queue   ports.QueueGateway
	tracer  ports.Tracer
	cfg     SagaConfig
	log     zerolog.Logger
	now     func() time.Time
}

// NewActivationService creates a new ActivationServiceImpl.
func NewActivationService(
	events ports.EventStore,
	views ports.TransactionViewRepository,
	cache ports.PaymentRequestInfoCache,
	locks ports.ExclusiveLockStore,
	nodo ports.ClearingNode,
	tokens ports.TokenIssuer,
	queue ports.QueueGateway,
	tracer ports.Tracer,
	cfg SagaConfig,
	log zerolog.Logger,
) *ActivationServiceImpl {
	return &ActivationServiceImpl{
		journal: newEventJournal(events, views, log),
		cache:   cache,
		locks:   locks,
		nodo:    nodo,
		tokens:  tokens,
		queue:   queue,
		tracer:  tracer,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
	}
}

// Activate resolves every notice against the clearing node and opens the
// transaction with a single Activated event.
func (s *ActivationServiceImpl) Activate(ctx context.Context, req ports.ActivationRequest) (*ports.ActivationResult, error) {
	if len(req.PaymentNotices) == 0 {
		return nil, apperror.ErrInvalidRequest("at least one payment notice is required")
	}
	if !req.ClientID.IsValid() {
		return nil, apperror.ErrInvalidRequest(fmt.Sprintf("unknown client id %q", req.ClientID))
	}
	for _, n := range req.PaymentNotices {
		if _, err := domain.ParseRptID(n.RptID.String()); err != nil {
			return nil, apperror.ErrInvalidRequest(err.Error())
		}
	}

	notices := make([]domain.PaymentNotice, len(req.PaymentNotices))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.activationParallelism())
	for i, n := range req.PaymentNotices {
		g.Go(func() error {
			notice, err := s.resolveNotice(gctx, req.TransactionID, n)
			if err != nil {
				return err
			}
			notices[i] = notice
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	token, err := s.tokens.CreateToken(ports.TokenClaims{
		TransactionID: req.TransactionID,
		OrderID:       req.OrderID,
		UserID:        req.UserID,
	}, s.cfg.TokenAudience, s.cfg.PaymentTokenValidity)
	if err != nil {
		return nil, apperror.ErrTokenIssuer(err)
	}

	event := domain.NewEvent(req.TransactionID, domain.ActivatedData{
		PaymentNotices:              notices,
		ClientID:                    req.ClientID,
		IDCart:                      req.IDCart,
		UserID:                      req.UserID,
		PaymentTokenValiditySeconds: int(s.cfg.PaymentTokenValidity / time.Second),
	}, s.now())

	// The Activated message stays invisible for the whole token validity, so
	// it is published first: a retried activation opens a new transaction,
	// and consumers drop a message whose log was never written as NotFound.
	if err := s.queue.Send(ctx, s.cfg.Queues.Activated, event, s.cfg.PaymentTokenValidity, s.cfg.TransientQueueTTL); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("publish activated event: %w", err))
	}
	snap, err := s.journal.append(ctx, emptySnapshot(), event)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("transaction_id", req.TransactionID.String()).
		Int("notices", len(notices)).
		Str("client_id", string(req.ClientID)).
		Msg("transaction activated")

	return &ports.ActivationResult{
		Transaction: snap.tx.(domain.TransactionActivated),
		Event:       event,
		AuthToken:   token,
	}, nil
}

// resolveNotice returns the activated notice, calling the clearing node only
// when no valid payment token is cached for it.
func (s *ActivationServiceImpl) resolveNotice(ctx context.Context, txID domain.TransactionID, req ports.NoticeRequest) (domain.PaymentNotice, error) {
	info, err := s.cache.Get(ctx, req.RptID)
	if err != nil {
		return domain.PaymentNotice{}, apperror.InternalError(fmt.Errorf("read payment request info: %w", err))
	}
	if info.HasValidToken(s.now(), s.cfg.PaymentTokenValidity) {
		s.tracer.RepeatedActivation(req.RptID)
		return noticeFromInfo(info), nil
	}

	if info == nil || info.IdempotencyKey.IsZero() {
		info, err = s.ensureIdempotencyKey(ctx, req.RptID, info)
		if err != nil {
			return domain.PaymentNotice{}, err
		}
		if info.HasValidToken(s.now(), s.cfg.PaymentTokenValidity) {
			s.tracer.RepeatedActivation(req.RptID)
			return noticeFromInfo(info), nil
		}
	}

	lock := domain.ExclusiveLockDocument{ID: "activation-" + req.RptID.String(), Holder: txID.String()}
	acquired, err := s.locks.SaveIfAbsent(ctx, lock, s.cfg.ActivationWaitTimeout)
	if err != nil {
		return domain.PaymentNotice{}, apperror.InternalError(fmt.Errorf("acquire activation lock: %w", err))
	}
	if !acquired {
		return s.awaitActivation(ctx, req.RptID, lock.ID)
	}
	defer s.releaseLock(lock.ID)

	// The previous holder may have cached a token between our read and the lock.
	if latest, err := s.cache.Get(ctx, req.RptID); err == nil && latest.HasValidToken(s.now(), s.cfg.PaymentTokenValidity) {
		s.tracer.RepeatedActivation(req.RptID)
		return noticeFromInfo(latest), nil
	}

	resp, err := s.nodo.ActivatePayment(ctx, ports.ActivatePaymentRequest{
		RptID:                req.RptID,
		IdempotencyKey:       info.IdempotencyKey,
		Amount:               req.Amount,
		TransactionID:        txID,
		PaymentTokenValidity: s.cfg.PaymentTokenValidity,
		DueDate:              info.DueDate,
	})
	if err != nil {
		s.log.Error().Err(err).Str("rpt_id", req.RptID.String()).Msg("payment notice activation failed")
		return domain.PaymentNotice{}, apperror.ErrBadGateway("nodo", err)
	}

	amount := resp.Amount
	if amount == 0 {
		amount = req.Amount
	}
	activationDate := s.now().UTC()
	activated := domain.PaymentRequestInfo{
		RptID:          req.RptID,
		IdempotencyKey: info.IdempotencyKey,
		PaymentToken:   resp.PaymentToken,
		Amount:         amount,
		Description:    resp.Description,
		DueDate:        resp.DueDate,
		TransferList:   resp.TransferList,
		IsAllCCP:       resp.IsAllCCP,
		ActivationDate: &activationDate,
	}
	if err := s.cache.Save(ctx, activated); err != nil {
		s.log.Warn().Err(err).Str("rpt_id", req.RptID.String()).Msg("caching payment token failed")
	}
	return noticeFromInfo(&activated), nil
}

// ensureIdempotencyKey stores a partial entry carrying a fresh key. When a
// concurrent request created the entry first, its key wins.
func (s *ActivationServiceImpl) ensureIdempotencyKey(ctx context.Context, rptID domain.RptID, existing *domain.PaymentRequestInfo) (*domain.PaymentRequestInfo, error) {
	key, err := domain.NewIdempotencyKey(rptID.FiscalCode())
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	partial := domain.PaymentRequestInfo{RptID: rptID, IdempotencyKey: key}

	if existing != nil {
		if err := s.cache.Save(ctx, partial); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("save payment request info: %w", err))
		}
		return &partial, nil
	}

	created, err := s.cache.SaveIfAbsent(ctx, partial)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save payment request info: %w", err))
	}
	if created {
		return &partial, nil
	}

	winner, err := s.cache.Get(ctx, rptID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("read payment request info: %w", err))
	}
	if winner == nil || winner.IdempotencyKey.IsZero() {
		return &partial, nil
	}
	return winner, nil
}

// awaitActivation polls the cache while another request activates the notice.
func (s *ActivationServiceImpl) awaitActivation(ctx context.Context, rptID domain.RptID, lockID string) (domain.PaymentNotice, error) {
	timeout := time.NewTimer(s.cfg.ActivationWaitTimeout)
	defer timeout.Stop()
	ticker := time.NewTicker(s.cfg.activationPollInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return domain.PaymentNotice{}, ctx.Err()
		case <-timeout.C:
			return domain.PaymentNotice{}, apperror.ErrLockNotAcquired(lockID)
		case <-ticker.C:
			info, err := s.cache.Get(ctx, rptID)
			if err != nil {
				s.log.Warn().Err(err).Str("rpt_id", rptID.String()).Msg("polling payment request info failed")
				continue
			}
			if info.HasValidToken(s.now(), s.cfg.PaymentTokenValidity) {
				s.tracer.RepeatedActivation(rptID)
				return noticeFromInfo(info), nil
			}
		}
	}
}

func (s *ActivationServiceImpl) releaseLock(lockID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.locks.Delete(ctx, lockID); err != nil {
		s.log.Warn().Err(err).Str("lock_id", lockID).Msg("releasing activation lock failed")
	}
}

func noticeFromInfo(info *domain.PaymentRequestInfo) domain.PaymentNotice {
	return domain.PaymentNotice{
		RptID:          info.RptID,
		PaymentToken:   info.PaymentToken,
		Amount:         info.Amount,
		Description:    info.Description,
		TransferList:   info.TransferList,
		IdempotencyKey: info.IdempotencyKey,
		DueDate:        info.DueDate,
		IsAllCCP:       info.IsAllCCP,
	}
}

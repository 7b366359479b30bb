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

// AuthorizationCompletionServiceImpl implements ports.AuthorizationCompletionService.
type AuthorizationCompletionServiceImpl struct {
	journal eventJournal
	log     zerolog.Logger
	now     func() time.Time
}

func NewAuthorizationCompletionService(events ports.EventStore, views ports.TransactionViewRepository, log zerolog.Logger) *AuthorizationCompletionServiceImpl {
	return &AuthorizationCompletionServiceImpl{
		journal: newEventJournal(events, views, log),
		log:     log,
		now:     time.Now,
	}
}

// CompleteAuthorization records the gateway outcome of a requested authorization.
func (s *AuthorizationCompletionServiceImpl) CompleteAuthorization(ctx context.Context, update ports.AuthorizationOutcomeUpdate) (*domain.Event, error) {
	snap, err := s.journal.load(ctx, update.TransactionID)
	if err != nil {
		return nil, err
	}
	requested, ok := snap.tx.(domain.TransactionWithRequestedAuthorization)
	if !ok {
		return nil, alreadyProcessed(snap.tx)
	}
	if err := validateGatewayOutcome(requested.Authorization, update.GatewayData); err != nil {
		return nil, err
	}

	timestamp := update.TimestampOperation
	if timestamp.IsZero() {
		timestamp = s.now().UTC()
	}
	event := domain.NewEvent(update.TransactionID, domain.AuthorizationCompletedData{
		AuthorizationCode:  update.AuthorizationCode,
		RRN:                update.RRN,
		TimestampOperation: timestamp,
		GatewayData:        update.GatewayData,
	}, s.now())

	if _, err := s.journal.append(ctx, snap, event); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("transaction_id", update.TransactionID.String()).
		Str("gateway", string(update.GatewayData.Gateway())).
		Str("outcome", string(update.GatewayData.AuthorizationOutcome())).
		Msg("authorization completed")
	return &event, nil
}

func validateGatewayOutcome(requested domain.AuthorizationRequestedData, data domain.GatewayAuthorizationData) error {
	if data == nil {
		return apperror.ErrInvalidRequest("gateway outcome is required")
	}
	if requested.GatewayData != nil && requested.GatewayData.Gateway() != data.Gateway() {
		return apperror.ErrInvalidRequest(fmt.Sprintf(
			"outcome from %s for an authorization requested to %s", data.Gateway(), requested.GatewayData.Gateway()))
	}

	switch d := data.(type) {
	case domain.NpgAuthorizationData:
		if !d.OperationResult.IsValid() {
			return apperror.ErrInvalidRequest(fmt.Sprintf("unknown npg operation result %q", d.OperationResult))
		}
	case domain.RedirectAuthorizationData:
		if d.Outcome != domain.AuthorizationOutcomeOK && d.Outcome != domain.AuthorizationOutcomeKO {
			return apperror.ErrInvalidRequest(fmt.Sprintf("unknown redirect outcome %q", d.Outcome))
		}
	}
	return nil
}

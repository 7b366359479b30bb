package service

import (
	"context"
	"fmt"
	"strings"

	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"
	"transactions-saga/pkg/apperror"
)

const logoBaseURL = "https://assets.cdn.platform.pagopa.it/creditcard/"

// brandLogo returns the asset url of a card brand or PSP.
func brandLogo(brand string) string {
	if brand == "" {
		return ""
	}
	return logoBaseURL + strings.ToLower(brand) + ".png"
}

// NpgPipeline handles card and alternative payment method authorizations on NPG.
type NpgPipeline struct {
	client ports.NpgClient
}

func NewNpgPipeline(client ports.NpgClient) *NpgPipeline {
	return &NpgPipeline{client: client}
}

func (p *NpgPipeline) Gateway() domain.GatewayType {
	return domain.GatewayNPG
}

// RequestAuthorization confirms the card session, or builds a hosted page for
// an alternative payment method. Redirect requests are not for NPG.
func (p *NpgPipeline) RequestAuthorization(ctx context.Context, req ports.GatewayAuthorizationRequest) (*domain.GatewayAuthorizationResult, error) {
	switch d := req.Details.(type) {
	case domain.CardsAuthorizationDetails:
		return p.confirmCard(ctx, req, d)
	case domain.ApmAuthorizationDetails:
		return p.buildApm(ctx, req)
	}
	return nil, nil
}

func (p *NpgPipeline) confirmCard(ctx context.Context, req ports.GatewayAuthorizationRequest, d domain.CardsAuthorizationDetails) (*domain.GatewayAuthorizationResult, error) {
	if req.CardSession == nil || req.CardSession.SessionID == "" {
		return nil, apperror.ErrInvalidRequest("card authorization requires a payment methods session")
	}

	resp, err := p.client.ConfirmPayment(ctx, ports.NpgConfirmRequest{
		CorrelationID: req.CorrelationID,
		SessionID:     req.CardSession.SessionID,
		Amount:        req.Amount + req.Fee,
	})
	if err != nil {
		return nil, err
	}

	switch resp.State {
	case ports.NpgStateRedirectedToExternalDomain, ports.NpgStateGDIVerification, ports.NpgStatePaymentComplete:
	default:
		return nil, fmt.Errorf("npg confirm payment: unexpected state %q", resp.State)
	}
	if resp.URL == "" && resp.State != ports.NpgStatePaymentComplete {
		return nil, fmt.Errorf("npg confirm payment: state %s without url", resp.State)
	}

	sessionID := req.CardSession.SessionID
	return &domain.GatewayAuthorizationResult{
		Gateway:          domain.GatewayNPG,
		AuthorizationURL: resp.URL,
		AuthorizationID:  d.OrderID,
		SessionID:        &sessionID,
	}, nil
}

func (p *NpgPipeline) buildApm(ctx context.Context, req ports.GatewayAuthorizationRequest) (*domain.GatewayAuthorizationResult, error) {
	orderID := strings.ReplaceAll(req.CorrelationID.String(), "-", "")[:18]
	resp, err := p.client.BuildForm(ctx, ports.NpgBuildRequest{
		CorrelationID: req.CorrelationID,
		TransactionID: req.Transaction.ID,
		OrderID:       orderID,
		Amount:        req.Amount + req.Fee,
		PaymentMethod: req.PaymentMethodName,
		Language:      req.Language,
	})
	if err != nil {
		return nil, err
	}

	sessionID := resp.SessionID
	return &domain.GatewayAuthorizationResult{
		Gateway:          domain.GatewayNPG,
		AuthorizationURL: resp.URL,
		AuthorizationID:  orderID,
		SessionID:        &sessionID,
	}, nil
}

// RedirectPipeline handles PSPs that authorize on their own pages.
type RedirectPipeline struct {
	client ports.RedirectClient
	psps   map[string]struct{}
}

// NewRedirectPipeline creates a pipeline serving pspIDs. An empty list serves every PSP.
func NewRedirectPipeline(client ports.RedirectClient, pspIDs []string) *RedirectPipeline {
	psps := make(map[string]struct{}, len(pspIDs))
	for _, id := range pspIDs {
		psps[id] = struct{}{}
	}
	return &RedirectPipeline{client: client, psps: psps}
}

func (p *RedirectPipeline) Gateway() domain.GatewayType {
	return domain.GatewayRedirect
}

func (p *RedirectPipeline) RequestAuthorization(ctx context.Context, req ports.GatewayAuthorizationRequest) (*domain.GatewayAuthorizationResult, error) {
	if _, ok := req.Details.(domain.RedirectAuthorizationDetails); !ok {
		return nil, nil
	}
	if len(p.psps) > 0 {
		if _, ok := p.psps[req.PspID]; !ok {
			return nil, nil
		}
	}

	descriptions := make([]string, 0, len(req.Transaction.PaymentNotices))
	for _, n := range req.Transaction.PaymentNotices {
		descriptions = append(descriptions, n.Description)
	}

	resp, err := p.client.CreateRedirectURL(ctx, ports.RedirectURLRequest{
		CorrelationID:   req.CorrelationID,
		TransactionID:   req.Transaction.ID,
		PspID:           req.PspID,
		PaymentTypeCode: req.PaymentTypeCode,
		Amount:          req.Amount + req.Fee,
		Description:     strings.Join(descriptions, "; "),
		Touchpoint:      req.Transaction.ClientID,
	})
	if err != nil {
		return nil, err
	}

	timeout := resp.TimeoutMillis
	return &domain.GatewayAuthorizationResult{
		Gateway:          domain.GatewayRedirect,
		AuthorizationURL: resp.URL,
		AuthorizationID:  resp.PspTransactionID,
		TimeoutMillis:    &timeout,
	}, nil
}

package ports

import (
	"context"
	"time"

	"transactions-saga/internal/core/domain"
)

// --- Service Ports (saga steps) ---

// NoticeRequest is a notice the caller wants to pay.
type NoticeRequest struct {
	RptID  domain.RptID
	Amount int64
}

// ActivationRequest holds validated input for the activation step.
type ActivationRequest struct {
	TransactionID  domain.TransactionID
	PaymentNotices []NoticeRequest
	ClientID       domain.ClientID
	IDCart         *string
	OrderID        *string
	UserID         *string
}

// ActivationResult is returned once every notice is activated.
type ActivationResult struct {
	Transaction domain.TransactionActivated
	Event       domain.Event
	AuthToken   string
}

type ActivationService interface {
	Activate(ctx context.Context, req ActivationRequest) (*ActivationResult, error)
}

// AuthorizationRequest holds validated input for the authorization step.
type AuthorizationRequest struct {
	TransactionID       domain.TransactionID
	Amount              int64
	Fee                 int64
	PaymentInstrumentID string
	PspID               string
	PaymentTypeCode     string
	BrokerName          string
	PspChannelCode      string
	PaymentMethodName   string
	PspBusinessName     string
	Language            string
	Details             domain.AuthorizationDetails
}

type AuthorizationResult struct {
	AuthorizationURL       string
	AuthorizationRequestID string
	Event                  domain.Event
}

type AuthorizationService interface {
	RequestAuthorization(ctx context.Context, req AuthorizationRequest) (*AuthorizationResult, error)
}

// AuthorizationOutcomeUpdate is the asynchronous gateway outcome.
type AuthorizationOutcomeUpdate struct {
	TransactionID      domain.TransactionID
	AuthorizationCode  *string
	RRN                *string
	TimestampOperation time.Time
	GatewayData        domain.GatewayAuthorizationData
}

type AuthorizationCompletionService interface {
	CompleteAuthorization(ctx context.Context, update AuthorizationOutcomeUpdate) (*domain.Event, error)
}

// ClosureRequestService appends the closure marker and hands off to the closure queue.
type ClosureRequestService interface {
	RequestClosure(ctx context.Context, transactionID domain.TransactionID) (*domain.Event, error)
}

// ClosureService runs a close-payment attempt and its refund trigger.
type ClosureService interface {
	Close(ctx context.Context, transactionID domain.TransactionID) (*domain.Event, error)
}

type UserReceiptRequest struct {
	TransactionID domain.TransactionID
	Outcome       domain.ReceiptOutcome
	Language      string
	PaymentDate   time.Time
}

type UserReceiptService interface {
	RequestUserReceipt(ctx context.Context, req UserReceiptRequest) (*domain.Event, error)
}

type CancellationService interface {
	Cancel(ctx context.Context, transactionID domain.TransactionID) (*domain.Event, error)
}

// TransactionQueryService exposes the folded aggregate.
type TransactionQueryService interface {
	GetTransaction(ctx context.Context, transactionID domain.TransactionID) (domain.Transaction, error)
}

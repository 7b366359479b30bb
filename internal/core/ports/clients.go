package ports

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"transactions-saga/internal/core/domain"

	"github.com/google/uuid"
)

// UpstreamError is returned by adapters of external HTTP collaborators.
// StatusCode is zero when the call failed before a response was received.
type UpstreamError struct {
	Service    string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s: http %d: %v", e.Service, e.StatusCode, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Recoverable reports whether retrying the same call may succeed:
// transport errors, 5xx, 408 and 429 are recoverable, any other 4xx is not.
func (e *UpstreamError) Recoverable() bool {
	switch {
	case e.StatusCode == 0:
		return true
	case e.StatusCode >= http.StatusInternalServerError:
		return true
	case e.StatusCode == http.StatusRequestTimeout, e.StatusCode == http.StatusTooManyRequests:
		return true
	}
	return false
}

// IsRecoverable classifies any error coming out of an external call.
// Errors that are not UpstreamError are treated as recoverable.
func IsRecoverable(err error) bool {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Recoverable()
	}
	return true
}

// ---- Clearing node ----

type ActivatePaymentRequest struct {
	RptID                domain.RptID
	IdempotencyKey       domain.IdempotencyKey
	Amount               int64
	TransactionID        domain.TransactionID
	PaymentTokenValidity time.Duration
	DueDate              string
}

type ActivatePaymentResponse struct {
	PaymentToken string
	Amount       int64
	Description  string
	DueDate      string
	TransferList []domain.TransferInfo
	IsAllCCP     bool
}

// ClosePaymentNotice carries the per-notice part of a close-payment request.
type ClosePaymentNotice struct {
	RptID        domain.RptID
	PaymentToken string
	Amount       int64
	TransferList []domain.TransferInfo
}

// ClosePaymentDetails is the transaction summary attached for the clearing node's audit trail.
type ClosePaymentDetails struct {
	TransactionStatus      string
	CreationDate           time.Time
	Gateway                domain.GatewayType
	AuthorizationRequestID string
	AuthorizationCode      *string
	RRN                    *string
	ErrorCode              *string
	Brand                  string
	LogoURL                string
	PspBusinessName        string
	PaymentMethodName      string
}

type ClosePaymentRequest struct {
	TransactionID      domain.TransactionID
	PaymentTokens      []string
	Notices            []ClosePaymentNotice
	Outcome            domain.AuthorizationOutcome
	Amount             int64
	Fee                int64
	TotalAmount        int64
	TimestampOperation time.Time
	PspID              string
	PaymentTypeCode    string
	BrokerName         string
	PspChannelCode     string
	Details            ClosePaymentDetails
}

type ClosePaymentResponse struct {
	Outcome domain.ClosureOutcome
}

// ClearingNode is the external system activating and closing payments.
type ClearingNode interface {
	ActivatePayment(ctx context.Context, req ActivatePaymentRequest) (*ActivatePaymentResponse, error)
	ClosePayment(ctx context.Context, req ClosePaymentRequest) (*ClosePaymentResponse, error)
}

// ---- Token issuer ----

// TokenClaims are the claims bound to a transaction-scoped token.
type TokenClaims struct {
	TransactionID domain.TransactionID
	OrderID       *string
	UserID        *string
}

type TokenIssuer interface {
	CreateToken(claims TokenClaims, audience string, duration time.Duration) (string, error)
	Validate(token string, audience string) (*TokenClaims, error)
}

// ---- Payment gateways ----

// CardSession is the payment-methods session bound to a card authorization.
type CardSession struct {
	SessionID string
	Brand     string
}

// PaymentMethodsClient manages card sessions on the payment-methods service.
type PaymentMethodsClient interface {
	UpdateSession(ctx context.Context, paymentMethodID, orderID string, transactionID domain.TransactionID) (*CardSession, error)
}

// GatewayAuthorizationRequest is the input every authorization pipeline receives.
type GatewayAuthorizationRequest struct {
	Transaction         domain.TransactionActivated
	CorrelationID       uuid.UUID
	Amount              int64
	Fee                 int64
	PaymentInstrumentID string
	PspID               string
	PaymentTypeCode     string
	PaymentMethodName   string
	Language            string
	Details             domain.AuthorizationDetails
	CardSession         *CardSession
}

// AuthorizationPipeline shapes and sends an authorization request to one gateway.
// It returns nil, nil when the request is not meant for its gateway.
type AuthorizationPipeline interface {
	Gateway() domain.GatewayType
	RequestAuthorization(ctx context.Context, req GatewayAuthorizationRequest) (*domain.GatewayAuthorizationResult, error)
}

type NpgBuildRequest struct {
	CorrelationID uuid.UUID
	TransactionID domain.TransactionID
	OrderID       string
	Amount        int64
	PaymentMethod string
	Language      string
}

type NpgBuildResponse struct {
	SessionID string
	URL       string
}

type NpgConfirmRequest struct {
	CorrelationID uuid.UUID
	SessionID     string
	Amount        int64
}

// NpgConfirmState is the state returned by the NPG confirm-payment call.
type NpgConfirmState string

const (
	NpgStateRedirectedToExternalDomain NpgConfirmState = "REDIRECTED_TO_EXTERNAL_DOMAIN"
	NpgStateGDIVerification            NpgConfirmState = "GDI_VERIFICATION"
	NpgStatePaymentComplete            NpgConfirmState = "PAYMENT_COMPLETE"
)

type NpgConfirmResponse struct {
	State NpgConfirmState
	URL   string
}

// NpgClient talks to the NPG gateway.
type NpgClient interface {
	BuildForm(ctx context.Context, req NpgBuildRequest) (*NpgBuildResponse, error)
	ConfirmPayment(ctx context.Context, req NpgConfirmRequest) (*NpgConfirmResponse, error)
}

type RedirectURLRequest struct {
	CorrelationID   uuid.UUID
	TransactionID   domain.TransactionID
	PspID           string
	PaymentTypeCode string
	Amount          int64
	Description     string
	Touchpoint      domain.ClientID
}

type RedirectURLResponse struct {
	URL              string
	PspTransactionID string
	TimeoutMillis    int64
}

// RedirectClient talks to the redirect based PSP gateway.
type RedirectClient interface {
	CreateRedirectURL(ctx context.Context, req RedirectURLRequest) (*RedirectURLResponse, error)
}

// ---- Observability ----

// TraceOutcome is the result recorded by a Tracer.
type TraceOutcome string

const (
	TraceOutcomeOK    TraceOutcome = "OK"
	TraceOutcomeError TraceOutcome = "ERROR"
)

// Tracer is the observability side channel of the saga.
type Tracer interface {
	RepeatedActivation(rptID domain.RptID)
	AuthorizationRequested(gateway domain.GatewayType, paymentTypeCode string, outcome TraceOutcome)
	ClosureAttempted(outcome TraceOutcome, closure domain.ClosureOutcome)
}

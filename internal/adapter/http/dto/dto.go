package dto

import (
	"fmt"
	"time"

	"transactions-saga/internal/core/domain"
)

// PaymentNoticeRequest is a notice the user wants to pay.
type PaymentNoticeRequest struct {
	RptID  string `json:"rpt_id" binding:"required,rpt_id"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// NewTransactionRequest is the request body for transaction activation.
type NewTransactionRequest struct {
	PaymentNotices []PaymentNoticeRequest `json:"payment_notices" binding:"required,min=1,max=5,dive"`
	IDCart         *string                `json:"id_cart,omitempty" binding:"omitempty,max=35,safe_id"`
	OrderID        *string                `json:"order_id,omitempty" binding:"omitempty,max=64,safe_id"`
}

// AuthorizationDetailsRequest selects the gateway flow.
type AuthorizationDetailsRequest struct {
	DetailType string `json:"detail_type" binding:"required,oneof=cards apm redirect"`
	OrderID    string `json:"order_id,omitempty" binding:"required_if=DetailType cards,omitempty,safe_id"`
}

// AuthorizationRequest is the request body for an authorization request.
type AuthorizationRequest struct {
	Amount              int64                       `json:"amount" binding:"required,gt=0"`
	Fee                 int64                       `json:"fee" binding:"gte=0"`
	PaymentInstrumentID string                      `json:"payment_instrument_id" binding:"required,safe_id"`
	PspID               string                      `json:"psp_id" binding:"required,safe_id"`
	PaymentTypeCode     string                      `json:"payment_type_code" binding:"required,safe_id"`
	BrokerName          string                      `json:"broker_name" binding:"max=70"`
	PspChannelCode      string                      `json:"psp_channel_code" binding:"max=35"`
	PaymentMethodName   string                      `json:"payment_method_name" binding:"required,max=35"`
	PspBusinessName     string                      `json:"psp_business_name" binding:"max=70"`
	Language            string                      `json:"language" binding:"required,oneof=IT EN FR DE SL"`
	Details             AuthorizationDetailsRequest `json:"details"`
}

// AuthorizationDetails maps the request detail type to its domain variant.
func (r AuthorizationDetailsRequest) AuthorizationDetails() (domain.AuthorizationDetails, error) {
	switch r.DetailType {
	case "cards":
		return domain.CardsAuthorizationDetails{OrderID: r.OrderID}, nil
	case "apm":
		return domain.ApmAuthorizationDetails{}, nil
	case "redirect":
		return domain.RedirectAuthorizationDetails{}, nil
	}
	return nil, fmt.Errorf("unknown detail type %q", r.DetailType)
}

// AuthorizationResponse is returned once the gateway accepted the request.
type AuthorizationResponse struct {
	AuthorizationURL       string `json:"authorization_url"`
	AuthorizationRequestID string `json:"authorization_request_id"`
}

// OutcomeGatewayRequest is the gateway specific part of an authorization outcome.
type OutcomeGatewayRequest struct {
	PaymentGatewayType string  `json:"payment_gateway_type" binding:"required,oneof=NPG REDIRECT"`
	OperationResult    string  `json:"operation_result,omitempty" binding:"required_if=PaymentGatewayType NPG"`
	OperationID        string  `json:"operation_id,omitempty"`
	PaymentEndToEndID  string  `json:"payment_end_to_end_id,omitempty"`
	Outcome            string  `json:"outcome,omitempty" binding:"required_if=PaymentGatewayType REDIRECT"`
	ErrorCode          *string `json:"error_code,omitempty"`
}

// AuthorizationOutcomeRequest is the body of the gateway outcome notification.
type AuthorizationOutcomeRequest struct {
	AuthorizationCode  *string               `json:"authorization_code,omitempty"`
	RRN                *string               `json:"rrn,omitempty"`
	TimestampOperation *time.Time            `json:"timestamp_operation,omitempty"`
	OutcomeGateway     OutcomeGatewayRequest `json:"outcome_gateway"`
}

// GatewayData maps the outcome to its domain variant.
func (r OutcomeGatewayRequest) GatewayData() domain.GatewayAuthorizationData {
	if r.PaymentGatewayType == string(domain.GatewayRedirect) {
		return domain.RedirectAuthorizationData{
			Outcome:   domain.AuthorizationOutcome(r.Outcome),
			ErrorCode: r.ErrorCode,
		}
	}
	return domain.NpgAuthorizationData{
		OperationResult:   domain.NpgOperationResult(r.OperationResult),
		OperationID:       r.OperationID,
		PaymentEndToEndID: r.PaymentEndToEndID,
		ErrorCode:         r.ErrorCode,
	}
}

// UserReceiptRequest asks for the payment receipt to be sent to the user.
type UserReceiptRequest struct {
	Outcome     string     `json:"outcome" binding:"required,oneof=OK KO"`
	Language    string     `json:"language" binding:"required,oneof=IT EN FR DE SL"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
}

// TransferResponse is one transfer of a payment notice.
type TransferResponse struct {
	PaFiscalCode     string `json:"pa_fiscal_code"`
	DigitalStamp     bool   `json:"digital_stamp"`
	TransferAmount   int64  `json:"transfer_amount"`
	TransferCategory string `json:"transfer_category,omitempty"`
}

type PaymentNoticeResponse struct {
	RptID        string             `json:"rpt_id"`
	PaymentToken string             `json:"payment_token"`
	Amount       int64              `json:"amount"`
	Description  string             `json:"description"`
	TransferList []TransferResponse `json:"transfer_list"`
}

// TransactionResponse is the folded transaction.
type TransactionResponse struct {
	TransactionID          string                  `json:"transaction_id"`
	Status                 string                  `json:"status"`
	StatusBeforeExpiration *string                 `json:"status_before_expiration,omitempty"`
	ClientID               string                  `json:"client_id"`
	IDCart                 *string                 `json:"id_cart,omitempty"`
	PaymentNotices         []PaymentNoticeResponse `json:"payment_notices"`
	Amount                 int64                   `json:"amount"`
	Fee                    *int64                  `json:"fee,omitempty"`
	Gateway                *string                 `json:"gateway,omitempty"`
	AuthorizationOutcome   *string                 `json:"authorization_outcome,omitempty"`
	ClosureOutcome         *string                 `json:"closure_outcome,omitempty"`
	CreationDate           string                  `json:"creation_date"`
	ValiditySeconds        int                     `json:"payment_token_validity_seconds"`
	AuthToken              string                  `json:"auth_token,omitempty"`
}

// EventResponse acknowledges a step whose effects continue asynchronously.
type EventResponse struct {
	TransactionID string `json:"transaction_id"`
	EventID       string `json:"event_id"`
	EventCode     string `json:"event_code"`
	CreationDate  string `json:"creation_date"`
}

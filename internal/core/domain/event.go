package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventCode identifies the kind of a transaction event.
type EventCode string

const (
	EventCodeActivated              EventCode = "TRANSACTION_ACTIVATED_EVENT"
	EventCodeAuthorizationRequested EventCode = "TRANSACTION_AUTHORIZATION_REQUESTED_EVENT"
	EventCodeAuthorizationCompleted EventCode = "TRANSACTION_AUTHORIZATION_COMPLETED_EVENT"
	EventCodeClosureRequested       EventCode = "TRANSACTION_CLOSURE_REQUESTED_EVENT"
	EventCodeClosed                 EventCode = "TRANSACTION_CLOSED_EVENT"
	EventCodeClosureFailed          EventCode = "TRANSACTION_CLOSURE_FAILED_EVENT"
	EventCodeClosureError           EventCode = "TRANSACTION_CLOSURE_ERROR_EVENT"
	EventCodeRefundRequested        EventCode = "TRANSACTION_REFUND_REQUESTED_EVENT"
	EventCodeUserReceiptRequested   EventCode = "TRANSACTION_USER_RECEIPT_REQUESTED_EVENT"
	EventCodeUserCanceled           EventCode = "TRANSACTION_USER_CANCELED_EVENT"
	EventCodeExpired                EventCode = "TRANSACTION_EXPIRED_EVENT"
)

// EventData is the typed payload of an Event.
type EventData interface {
	EventCode() EventCode
}

// Event is an immutable entry of a transaction's event log.
type Event struct {
	ID            uuid.UUID     `json:"id"`
	TransactionID TransactionID `json:"transactionId"`
	EventCode     EventCode     `json:"eventCode"`
	CreationDate  time.Time     `json:"creationDate"`
	Data          EventData     `json:"data"`
}

// NewEvent stamps a payload with a fresh id and the given creation time.
func NewEvent(transactionID TransactionID, data EventData, now time.Time) Event {
	return Event{
		ID:            uuid.New(),
		TransactionID: transactionID,
		EventCode:     data.EventCode(),
		CreationDate:  now.UTC(),
		Data:          data,
	}
}

// UnmarshalJSON decodes the payload according to the event code.
func (e *Event) UnmarshalJSON(b []byte) error {
	type alias Event
	aux := struct {
		*alias
		Data json.RawMessage `json:"data"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	data, err := DecodeEventData(e.EventCode, aux.Data)
	if err != nil {
		return err
	}
	e.Data = data
	return nil
}

// DecodeEventData decodes a raw JSON payload for the given event code.
func DecodeEventData(code EventCode, raw []byte) (EventData, error) {
	var data EventData
	switch code {
	case EventCodeActivated:
		data = &ActivatedData{}
	case EventCodeAuthorizationRequested:
		data = &AuthorizationRequestedData{}
	case EventCodeAuthorizationCompleted:
		data = &AuthorizationCompletedData{}
	case EventCodeClosureRequested:
		return ClosureRequestedData{}, nil
	case EventCodeClosed:
		data = &ClosedData{}
	case EventCodeClosureFailed:
		data = &ClosureFailedData{}
	case EventCodeClosureError:
		data = &ClosureErrorData{}
	case EventCodeRefundRequested:
		data = &RefundRequestedData{}
	case EventCodeUserReceiptRequested:
		data = &UserReceiptRequestedData{}
	case EventCodeUserCanceled:
		return UserCanceledData{}, nil
	case EventCodeExpired:
		data = &ExpiredData{}
	default:
		return nil, fmt.Errorf("unknown event code %q", code)
	}
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, data); err != nil {
			return nil, fmt.Errorf("decoding %s payload: %w", code, err)
		}
	}
	return deref(data), nil
}

// deref turns the decoding targets back into the value payloads the reducer matches on.
func deref(data EventData) EventData {
	switch d := data.(type) {
	case *ActivatedData:
		return *d
	case *AuthorizationRequestedData:
		return *d
	case *AuthorizationCompletedData:
		return *d
	case *ClosedData:
		return *d
	case *ClosureFailedData:
		return *d
	case *ClosureErrorData:
		return *d
	case *RefundRequestedData:
		return *d
	case *UserReceiptRequestedData:
		return *d
	case *ExpiredData:
		return *d
	}
	return data
}

// ---- Payloads ----

type ActivatedData struct {
	PaymentNotices              []PaymentNotice `json:"paymentNotices"`
	ClientID                    ClientID        `json:"clientId"`
	IDCart                      *string         `json:"idCart,omitempty"`
	UserID                      *string         `json:"userId,omitempty"`
	PaymentTokenValiditySeconds int             `json:"paymentTokenValiditySeconds"`
}

type AuthorizationRequestedData struct {
	Amount                 int64                             `json:"amount"`
	Fee                    int64                             `json:"fee"`
	PaymentInstrumentID    string                            `json:"paymentInstrumentId"`
	PspID                  string                            `json:"pspId"`
	PaymentTypeCode        string                            `json:"paymentTypeCode"`
	BrokerName             string                            `json:"brokerName"`
	PspChannelCode         string                            `json:"pspChannelCode"`
	PaymentMethodName      string                            `json:"paymentMethodName"`
	PspBusinessName        string                            `json:"pspBusinessName"`
	AuthorizationRequestID string                            `json:"authorizationRequestId"`
	AuthorizationURL       string                            `json:"authorizationUrl"`
	Language               string                            `json:"language"`
	GatewayData            GatewayAuthorizationRequestedData `json:"gatewayData"`
}

func (d AuthorizationRequestedData) MarshalJSON() ([]byte, error) {
	type alias AuthorizationRequestedData
	var gw json.RawMessage = []byte("null")
	if d.GatewayData != nil {
		raw, err := encodeGatewayEnvelope(d.GatewayData.Gateway(), d.GatewayData)
		if err != nil {
			return nil, err
		}
		gw = raw
	}
	return json.Marshal(struct {
		alias
		GatewayData json.RawMessage `json:"gatewayData"`
	}{alias: alias(d), GatewayData: gw})
}

func (d *AuthorizationRequestedData) UnmarshalJSON(b []byte) error {
	type alias AuthorizationRequestedData
	aux := struct {
		*alias
		GatewayData json.RawMessage `json:"gatewayData"`
	}{alias: (*alias)(d)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	gw, err := decodeGatewayRequestedData(aux.GatewayData)
	if err != nil {
		return err
	}
	d.GatewayData = gw
	return nil
}

type AuthorizationCompletedData struct {
	AuthorizationCode  *string                  `json:"authorizationCode,omitempty"`
	RRN                *string                  `json:"rrn,omitempty"`
	TimestampOperation time.Time                `json:"timestampOperation"`
	GatewayData        GatewayAuthorizationData `json:"gatewayData"`
}

func (d AuthorizationCompletedData) MarshalJSON() ([]byte, error) {
	type alias AuthorizationCompletedData
	var gw json.RawMessage = []byte("null")
	if d.GatewayData != nil {
		raw, err := encodeGatewayEnvelope(d.GatewayData.Gateway(), d.GatewayData)
		if err != nil {
			return nil, err
		}
		gw = raw
	}
	return json.Marshal(struct {
		alias
		GatewayData json.RawMessage `json:"gatewayData"`
	}{alias: alias(d), GatewayData: gw})
}

func (d *AuthorizationCompletedData) UnmarshalJSON(b []byte) error {
	type alias AuthorizationCompletedData
	aux := struct {
		*alias
		GatewayData json.RawMessage `json:"gatewayData"`
	}{alias: (*alias)(d)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	gw, err := decodeGatewayAuthorizationData(aux.GatewayData)
	if err != nil {
		return err
	}
	d.GatewayData = gw
	return nil
}

// Outcome returns the canonical authorization outcome, KO when unknown.
func (d AuthorizationCompletedData) Outcome() AuthorizationOutcome {
	if d.GatewayData == nil {
		return AuthorizationOutcomeKO
	}
	return d.GatewayData.AuthorizationOutcome()
}

type ClosureRequestedData struct{}

// ClosureOutcome is the clearing node's answer to a close-payment request.
type ClosureOutcome string

const (
	ClosureOutcomeOK ClosureOutcome = "OK"
	ClosureOutcomeKO ClosureOutcome = "KO"
)

type ClosedData struct {
	Outcome ClosureOutcome `json:"responseOutcome"`
}

type ClosureFailedData struct {
	Outcome ClosureOutcome `json:"responseOutcome"`
}

type ClosureErrorData struct {
	ErrorDescription string `json:"errorDescription"`
	HTTPStatusCode   *int   `json:"httpErrorCode,omitempty"`
	Recoverable      bool   `json:"recoverable"`
	RetryCount       int    `json:"retryCount"`
}

type RefundRequestedData struct {
	StatusBeforeRefunded TransactionStatus `json:"statusBeforeRefunded"`
}

// ReceiptOutcome is the outcome communicated to the user in the receipt.
type ReceiptOutcome string

const (
	ReceiptOutcomeOK ReceiptOutcome = "OK"
	ReceiptOutcomeKO ReceiptOutcome = "KO"
)

type UserReceiptRequestedData struct {
	Outcome     ReceiptOutcome `json:"responseOutcome"`
	Language    string         `json:"language"`
	PaymentDate time.Time      `json:"paymentDate"`
}

type UserCanceledData struct{}

type ExpiredData struct {
	StatusBeforeExpiration TransactionStatus `json:"statusBeforeExpiration"`
}

func (ActivatedData) EventCode() EventCode              { return EventCodeActivated }
func (AuthorizationRequestedData) EventCode() EventCode { return EventCodeAuthorizationRequested }
func (AuthorizationCompletedData) EventCode() EventCode { return EventCodeAuthorizationCompleted }
func (ClosureRequestedData) EventCode() EventCode       { return EventCodeClosureRequested }
func (ClosedData) EventCode() EventCode                 { return EventCodeClosed }
func (ClosureFailedData) EventCode() EventCode          { return EventCodeClosureFailed }
func (ClosureErrorData) EventCode() EventCode           { return EventCodeClosureError }
func (RefundRequestedData) EventCode() EventCode        { return EventCodeRefundRequested }
func (UserReceiptRequestedData) EventCode() EventCode   { return EventCodeUserReceiptRequested }
func (UserCanceledData) EventCode() EventCode           { return EventCodeUserCanceled }
func (ExpiredData) EventCode() EventCode                { return EventCodeExpired }

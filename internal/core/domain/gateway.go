package domain

import (
	"encoding/json"
	"fmt"
)

// GatewayType tags which payment gateway handled an authorization.
type GatewayType string

const (
	GatewayNPG      GatewayType = "NPG"
	GatewayRedirect GatewayType = "REDIRECT"
)

// AuthorizationOutcome is the canonical result of a gateway authorization.
type AuthorizationOutcome string

const (
	AuthorizationOutcomeOK AuthorizationOutcome = "OK"
	AuthorizationOutcomeKO AuthorizationOutcome = "KO"
)

// ---- Authorization request details (caller input) ----

// AuthorizationDetails carries the gateway specific part of an authorization request.
// Implemented by CardsAuthorizationDetails, ApmAuthorizationDetails and RedirectAuthorizationDetails.
type AuthorizationDetails interface {
	Gateway() GatewayType
	authorizationDetails()
}

// CardsAuthorizationDetails selects an NPG card payment bound to a payment-methods session.
type CardsAuthorizationDetails struct {
	OrderID string `json:"orderId"`
}

// ApmAuthorizationDetails selects an NPG alternative payment method.
type ApmAuthorizationDetails struct{}

// RedirectAuthorizationDetails selects a redirect based PSP.
type RedirectAuthorizationDetails struct{}

func (CardsAuthorizationDetails) Gateway() GatewayType    { return GatewayNPG }
func (ApmAuthorizationDetails) Gateway() GatewayType      { return GatewayNPG }
func (RedirectAuthorizationDetails) Gateway() GatewayType { return GatewayRedirect }

func (CardsAuthorizationDetails) authorizationDetails()    {}
func (ApmAuthorizationDetails) authorizationDetails()      {}
func (RedirectAuthorizationDetails) authorizationDetails() {}

// GatewayAuthorizationResult is the uniform answer of an authorization pipeline.
type GatewayAuthorizationResult struct {
	Gateway          GatewayType
	AuthorizationURL string
	AuthorizationID  string
	SessionID        *string
	ConfirmSessionID *string
	TimeoutMillis    *int64
}

// ---- Authorization requested event payload (per gateway) ----

// GatewayAuthorizationRequestedData is the gateway specific part of AuthorizationRequestedData.
type GatewayAuthorizationRequestedData interface {
	Gateway() GatewayType
	gatewayRequestedData()
}

type NpgAuthorizationRequestedData struct {
	LogoURL                 string  `json:"logo"`
	Brand                   string  `json:"brand"`
	SessionID               string  `json:"sessionId"`
	ConfirmPaymentSessionID *string `json:"confirmPaymentSessionId,omitempty"`
}

type RedirectAuthorizationRequestedData struct {
	LogoURL                         string `json:"logo"`
	TransactionOutcomeTimeoutMillis int64  `json:"transactionOutcomeTimeoutMillis"`
}

func (NpgAuthorizationRequestedData) Gateway() GatewayType      { return GatewayNPG }
func (RedirectAuthorizationRequestedData) Gateway() GatewayType { return GatewayRedirect }

func (NpgAuthorizationRequestedData) gatewayRequestedData()      {}
func (RedirectAuthorizationRequestedData) gatewayRequestedData() {}

// ---- Canonical gateway authorization outcome ----

// NpgOperationResult is the operation result reported by NPG.
type NpgOperationResult string

const (
	NpgOperationAuthorized       NpgOperationResult = "AUTHORIZED"
	NpgOperationExecuted         NpgOperationResult = "EXECUTED"
	NpgOperationDeclined         NpgOperationResult = "DECLINED"
	NpgOperationDeniedByRisk     NpgOperationResult = "DENIED_BY_RISK"
	NpgOperationThreeDSValidated NpgOperationResult = "THREEDS_VALIDATED"
	NpgOperationThreeDSFailed    NpgOperationResult = "THREEDS_FAILED"
	NpgOperationPending          NpgOperationResult = "PENDING"
	NpgOperationCanceled         NpgOperationResult = "CANCELED"
	NpgOperationVoided           NpgOperationResult = "VOIDED"
	NpgOperationRefunded         NpgOperationResult = "REFUNDED"
	NpgOperationFailed           NpgOperationResult = "FAILED"
)

// IsValid reports whether r is a known NPG operation result.
func (r NpgOperationResult) IsValid() bool {
	switch r {
	case NpgOperationAuthorized, NpgOperationExecuted, NpgOperationDeclined, NpgOperationDeniedByRisk,
		NpgOperationThreeDSValidated, NpgOperationThreeDSFailed, NpgOperationPending,
		NpgOperationCanceled, NpgOperationVoided, NpgOperationRefunded, NpgOperationFailed:
		return true
	}
	return false
}

// GatewayAuthorizationData is the canonical outcome folded into AuthorizationCompletedData.
type GatewayAuthorizationData interface {
	Gateway() GatewayType
	AuthorizationOutcome() AuthorizationOutcome
	gatewayAuthorizationData()
}

type NpgAuthorizationData struct {
	OperationResult   NpgOperationResult `json:"operationResult"`
	OperationID       string             `json:"operationId"`
	PaymentEndToEndID string             `json:"paymentEndToEndId"`
	ErrorCode         *string            `json:"errorCode,omitempty"`
}

type RedirectAuthorizationData struct {
	Outcome   AuthorizationOutcome `json:"outcome"`
	ErrorCode *string              `json:"errorCode,omitempty"`
}

func (NpgAuthorizationData) Gateway() GatewayType      { return GatewayNPG }
func (RedirectAuthorizationData) Gateway() GatewayType { return GatewayRedirect }

// AuthorizationOutcome is OK only for an executed NPG operation.
func (d NpgAuthorizationData) AuthorizationOutcome() AuthorizationOutcome {
	if d.OperationResult == NpgOperationExecuted {
		return AuthorizationOutcomeOK
	}
	return AuthorizationOutcomeKO
}

func (d RedirectAuthorizationData) AuthorizationOutcome() AuthorizationOutcome {
	if d.Outcome == AuthorizationOutcomeOK {
		return AuthorizationOutcomeOK
	}
	return AuthorizationOutcomeKO
}

func (NpgAuthorizationData) gatewayAuthorizationData()      {}
func (RedirectAuthorizationData) gatewayAuthorizationData() {}

// ---- JSON envelopes for the gateway unions ----

type gatewayEnvelope struct {
	Type GatewayType     `json:"type"`
	Data json.RawMessage `json:"data"`
}

func encodeGatewayEnvelope(gw GatewayType, v any) (json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(gatewayEnvelope{Type: gw, Data: data})
}

func decodeGatewayRequestedData(raw json.RawMessage) (GatewayAuthorizationRequestedData, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var env gatewayEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	switch env.Type {
	case GatewayNPG:
		var d NpgAuthorizationRequestedData
		err := json.Unmarshal(env.Data, &d)
		return d, err
	case GatewayRedirect:
		var d RedirectAuthorizationRequestedData
		err := json.Unmarshal(env.Data, &d)
		return d, err
	}
	return nil, fmt.Errorf("unknown gateway %q", env.Type)
}

func decodeGatewayAuthorizationData(raw json.RawMessage) (GatewayAuthorizationData, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var env gatewayEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	switch env.Type {
	case GatewayNPG:
		var d NpgAuthorizationData
		err := json.Unmarshal(env.Data, &d)
		return d, err
	case GatewayRedirect:
		var d RedirectAuthorizationData
		err := json.Unmarshal(env.Data, &d)
		return d, err
	}
	return nil, fmt.Errorf("unknown gateway %q", env.Type)
}

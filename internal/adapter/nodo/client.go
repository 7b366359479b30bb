// Package nodo adapts the clearing node REST API to ports.ClearingNode.
package nodo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"transactions-saga/internal/adapter/httpclient"
	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	activatePath = "/nodo/activatePaymentNotice/v2"
	closePath    = "/nodo/nodo-per-pm/v2/closepayment"
)

// Client implements ports.ClearingNode.
type Client struct {
	http *httpclient.Client
	log  zerolog.Logger
}

func NewClient(http *httpclient.Client, log zerolog.Logger) *Client {
	return &Client{http: http, log: log}
}

type qrCode struct {
	FiscalCode   string `json:"fiscalCode"`
	NoticeNumber string `json:"noticeNumber"`
}

type activateRequest struct {
	IdempotencyKey string          `json:"idempotencyKey"`
	QrCode         qrCode          `json:"qrCode"`
	Amount         decimal.Decimal `json:"amount"`
	ExpirationTime int64           `json:"expirationTime"`
	PaymentNote    string          `json:"paymentNote"`
	DueDate        string          `json:"dueDate,omitempty"`
}

type transfer struct {
	FiscalCodePA          string          `json:"fiscalCodePA"`
	TransferAmount        decimal.Decimal `json:"transferAmount"`
	TransferCategory      string          `json:"transferCategory"`
	RichiestaMarcaDaBollo bool            `json:"richiestaMarcaDaBollo"`
}

type fault struct {
	FaultCode   string `json:"faultCode"`
	Description string `json:"description"`
}

type activateResponse struct {
	Outcome            string          `json:"outcome"`
	PaymentToken       string          `json:"paymentToken"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	PaymentDescription string          `json:"paymentDescription"`
	DueDate            string          `json:"dueDate"`
	TransferList       []transfer      `json:"transferList"`
	AllCCP             bool            `json:"allCCP"`
	Fault              *fault          `json:"fault"`
}

// ActivatePayment activates a notice. The idempotency key makes a repeated
// call for the same notice return the same payment token.
func (c *Client) ActivatePayment(ctx context.Context, req ports.ActivatePaymentRequest) (*ports.ActivatePaymentResponse, error) {
	body := activateRequest{
		IdempotencyKey: req.IdempotencyKey.String(),
		QrCode: qrCode{
			FiscalCode:   req.RptID.FiscalCode(),
			NoticeNumber: req.RptID.NoticeNumber(),
		},
		Amount:         centsToEuro(req.Amount),
		ExpirationTime: req.PaymentTokenValidity.Milliseconds(),
		PaymentNote:    req.TransactionID.String(),
		DueDate:        req.DueDate,
	}

	var resp activateResponse
	if err := c.http.PostJSON(ctx, activatePath, nil, body, &resp); err != nil {
		return nil, err
	}
	if resp.Outcome != "OK" || resp.PaymentToken == "" {
		return nil, c.faultError(resp.Fault, "activation refused")
	}

	transfers := make([]domain.TransferInfo, 0, len(resp.TransferList))
	for _, t := range resp.TransferList {
		transfers = append(transfers, domain.TransferInfo{
			PaFiscalCode:     t.FiscalCodePA,
			DigitalStamp:     t.RichiestaMarcaDaBollo,
			TransferAmount:   euroToCents(t.TransferAmount),
			TransferCategory: t.TransferCategory,
		})
	}

	c.log.Debug().
		Str("rpt_id", req.RptID.String()).
		Str("idempotency_key", req.IdempotencyKey.String()).
		Msg("Payment notice activated")

	return &ports.ActivatePaymentResponse{
		PaymentToken: resp.PaymentToken,
		Amount:       euroToCents(resp.TotalAmount),
		Description:  resp.PaymentDescription,
		DueDate:      resp.DueDate,
		TransferList: transfers,
		IsAllCCP:     resp.AllCCP,
	}, nil
}

type closeTransactionDetails struct {
	TransactionStatus      string    `json:"transactionStatus"`
	CreationDate           time.Time `json:"creationDate"`
	Gateway                string    `json:"paymentGateway"`
	AuthorizationRequestID string    `json:"authorizationRequestId"`
	AuthorizationCode      *string   `json:"authorizationCode,omitempty"`
	RRN                    *string   `json:"rrn,omitempty"`
	ErrorCode              *string   `json:"errorCode,omitempty"`
	Brand                  string    `json:"brand,omitempty"`
	LogoURL                string    `json:"brandLogo,omitempty"`
	PspBusinessName        string    `json:"businessName"`
	PaymentMethodName      string    `json:"paymentMethodName"`
}

type closeNotice struct {
	RptID        string          `json:"rptId"`
	PaymentToken string          `json:"paymentToken"`
	Amount       decimal.Decimal `json:"amount"`
	TransferList []transfer      `json:"transferList"`
}

type closeRequest struct {
	PaymentTokens      []string                `json:"paymentTokens"`
	Outcome            string                  `json:"outcome"`
	IDPsp              string                  `json:"idPSP"`
	IDBrokerPsp        string                  `json:"idBrokerPSP"`
	IDChannel          string                  `json:"idChannel"`
	TransactionID      string                  `json:"transactionId"`
	TotalAmount        decimal.Decimal         `json:"totalAmount"`
	Fee                decimal.Decimal         `json:"fee"`
	TimestampOperation time.Time               `json:"timestampOperation"`
	PaymentMethod      string                  `json:"paymentMethod"`
	Notices            []closeNotice           `json:"paymentNotices"`
	TransactionDetails closeTransactionDetails `json:"transactionDetails"`
}

type closeResponse struct {
	Outcome string `json:"outcome"`
}

// ClosePayment notifies the clearing node of the authorization outcome for
// every payment token of the transaction.
func (c *Client) ClosePayment(ctx context.Context, req ports.ClosePaymentRequest) (*ports.ClosePaymentResponse, error) {
	notices := make([]closeNotice, 0, len(req.Notices))
	for _, n := range req.Notices {
		transfers := make([]transfer, 0, len(n.TransferList))
		for _, t := range n.TransferList {
			transfers = append(transfers, transfer{
				FiscalCodePA:          t.PaFiscalCode,
				TransferAmount:        centsToEuro(t.TransferAmount),
				TransferCategory:      t.TransferCategory,
				RichiestaMarcaDaBollo: t.DigitalStamp,
			})
		}
		notices = append(notices, closeNotice{
			RptID:        n.RptID.String(),
			PaymentToken: n.PaymentToken,
			Amount:       centsToEuro(n.Amount),
			TransferList: transfers,
		})
	}

	d := req.Details
	body := closeRequest{
		PaymentTokens:      req.PaymentTokens,
		Outcome:            string(req.Outcome),
		IDPsp:              req.PspID,
		IDBrokerPsp:        req.BrokerName,
		IDChannel:          req.PspChannelCode,
		TransactionID:      req.TransactionID.String(),
		TotalAmount:        centsToEuro(req.TotalAmount),
		Fee:                centsToEuro(req.Fee),
		TimestampOperation: req.TimestampOperation,
		PaymentMethod:      req.PaymentTypeCode,
		Notices:            notices,
		TransactionDetails: closeTransactionDetails{
			TransactionStatus:      d.TransactionStatus,
			CreationDate:           d.CreationDate,
			Gateway:                string(d.Gateway),
			AuthorizationRequestID: d.AuthorizationRequestID,
			AuthorizationCode:      d.AuthorizationCode,
			RRN:                    d.RRN,
			ErrorCode:              d.ErrorCode,
			Brand:                  d.Brand,
			LogoURL:                d.LogoURL,
			PspBusinessName:        d.PspBusinessName,
			PaymentMethodName:      d.PaymentMethodName,
		},
	}

	var resp closeResponse
	if err := c.http.PostJSON(ctx, closePath, nil, body, &resp); err != nil {
		return nil, err
	}

	switch domain.ClosureOutcome(resp.Outcome) {
	case domain.ClosureOutcomeOK, domain.ClosureOutcomeKO:
		return &ports.ClosePaymentResponse{Outcome: domain.ClosureOutcome(resp.Outcome)}, nil
	}
	return nil, &ports.UpstreamError{
		Service:    c.http.Service(),
		StatusCode: http.StatusBadGateway,
		Err:        fmt.Errorf("unexpected close payment outcome %q", resp.Outcome),
	}
}

// faultError reports a business refusal. The call reached the node, so
// retrying it unchanged is pointless.
func (c *Client) faultError(f *fault, fallback string) error {
	err := errors.New(fallback)
	if f != nil {
		err = fmt.Errorf("%s: %s", f.FaultCode, f.Description)
	}
	return &ports.UpstreamError{
		Service:    c.http.Service(),
		StatusCode: http.StatusUnprocessableEntity,
		Err:        err,
	}
}

func centsToEuro(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

func euroToCents(euro decimal.Decimal) int64 {
	return euro.Shift(2).Round(0).IntPart()
}

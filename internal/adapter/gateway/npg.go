// Package gateway holds the clients of the payment gateways used by the
// authorization pipelines.
package gateway

import (
	"context"
	"strconv"

	"transactions-saga/config"
	"transactions-saga/internal/adapter/httpclient"
	"transactions-saga/internal/core/ports"
)

const (
	npgBuildPath   = "/api/phoenix-0.0/psp/api/v1/orders/build"
	npgConfirmPath = "/api/phoenix-0.0/psp/api/v1/build/confirm_payment"
)

// NpgClient implements ports.NpgClient.
type NpgClient struct {
	http            *httpclient.Client
	merchantURL     string
	notificationURL string
}

func NewNpgClient(http *httpclient.Client, cfg config.NPGConfig) *NpgClient {
	return &NpgClient{
		http:            http,
		merchantURL:     cfg.MerchantURL,
		notificationURL: cfg.NotificationURL,
	}
}

type npgOrder struct {
	OrderID  string `json:"orderId"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type npgPaymentSession struct {
	ActionType      string `json:"actionType"`
	Amount          string `json:"amount"`
	Language        string `json:"language"`
	PaymentService  string `json:"paymentService"`
	ResultURL       string `json:"resultUrl"`
	CancelURL       string `json:"cancelUrl"`
	NotificationURL string `json:"notificationUrl"`
}

type npgBuildRequest struct {
	MerchantURL    string            `json:"merchantUrl"`
	Order          npgOrder          `json:"order"`
	PaymentSession npgPaymentSession `json:"paymentSession"`
}

type npgBuildResponse struct {
	SessionID  string `json:"sessionId"`
	HostedPage string `json:"hostedPage"`
}

// BuildForm opens an NPG hosted payment page for an alternative payment method.
func (c *NpgClient) BuildForm(ctx context.Context, req ports.NpgBuildRequest) (*ports.NpgBuildResponse, error) {
	amount := strconv.FormatInt(req.Amount, 10)
	resultURL := c.merchantURL + "/esito?transactionId=" + req.TransactionID.String()
	body := npgBuildRequest{
		MerchantURL: c.merchantURL,
		Order: npgOrder{
			OrderID:  req.OrderID,
			Amount:   amount,
			Currency: "EUR",
		},
		PaymentSession: npgPaymentSession{
			ActionType:      "PAY",
			Amount:          amount,
			Language:        req.Language,
			PaymentService:  req.PaymentMethod,
			ResultURL:       resultURL,
			CancelURL:       resultURL,
			NotificationURL: c.notificationURL + "/" + req.TransactionID.String(),
		},
	}

	var resp npgBuildResponse
	headers := map[string]string{"Correlation-Id": req.CorrelationID.String()}
	if err := c.http.PostJSON(ctx, npgBuildPath, headers, body, &resp); err != nil {
		return nil, err
	}
	return &ports.NpgBuildResponse{SessionID: resp.SessionID, URL: resp.HostedPage}, nil
}

type npgConfirmRequest struct {
	SessionID string `json:"sessionId"`
	Amount    string `json:"amount"`
}

type npgField struct {
	Src string `json:"src"`
}

type npgFieldSet struct {
	Fields []npgField `json:"fields"`
}

type npgConfirmResponse struct {
	State    string       `json:"state"`
	URL      string       `json:"url"`
	FieldSet *npgFieldSet `json:"fieldSet"`
}

// ConfirmPayment confirms a card session. The returned URL is the 3DS or
// external domain redirection when the state requires one.
func (c *NpgClient) ConfirmPayment(ctx context.Context, req ports.NpgConfirmRequest) (*ports.NpgConfirmResponse, error) {
	body := npgConfirmRequest{
		SessionID: req.SessionID,
		Amount:    strconv.FormatInt(req.Amount, 10),
	}

	var resp npgConfirmResponse
	headers := map[string]string{"Correlation-Id": req.CorrelationID.String()}
	if err := c.http.PostJSON(ctx, npgConfirmPath, headers, body, &resp); err != nil {
		return nil, err
	}

	url := resp.URL
	if url == "" && resp.FieldSet != nil && len(resp.FieldSet.Fields) > 0 {
		url = resp.FieldSet.Fields[0].Src
	}
	return &ports.NpgConfirmResponse{State: ports.NpgConfirmState(resp.State), URL: url}, nil
}

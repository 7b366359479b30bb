package gateway

import (
	"context"

	"transactions-saga/config"
	"transactions-saga/internal/adapter/httpclient"
	"transactions-saga/internal/core/ports"
)

const redirectURLPath = "/redirections/url"

// RedirectClient implements ports.RedirectClient.
type RedirectClient struct {
	http           *httpclient.Client
	returnURL      string
	defaultTimeout int64
}

func NewRedirectClient(http *httpclient.Client, cfg config.RedirectConfig) *RedirectClient {
	return &RedirectClient{
		http:           http,
		returnURL:      cfg.ReturnURL,
		defaultTimeout: cfg.OutcomeTimeout.Milliseconds(),
	}
}

type redirectURLRequest struct {
	IDTransaction string `json:"idTransaction"`
	IDPsp         string `json:"idPsp"`
	PaymentMethod string `json:"paymentMethod"`
	Amount        int64  `json:"amount"`
	Description   string `json:"description"`
	Touchpoint    string `json:"touchpoint"`
	URLBack       string `json:"urlBack"`
}

type redirectURLResponse struct {
	URL              string `json:"url"`
	IDPSPTransaction string `json:"idPSPTransaction"`
	Timeout          int64  `json:"timeout"`
}

// CreateRedirectURL asks the PSP for the page the user is redirected to.
// A missing timeout in the answer falls back to the configured outcome timeout.
func (c *RedirectClient) CreateRedirectURL(ctx context.Context, req ports.RedirectURLRequest) (*ports.RedirectURLResponse, error) {
	body := redirectURLRequest{
		IDTransaction: req.TransactionID.String(),
		IDPsp:         req.PspID,
		PaymentMethod: req.PaymentTypeCode,
		Amount:        req.Amount,
		Description:   req.Description,
		Touchpoint:    string(req.Touchpoint),
		URLBack:       c.returnURL + "?transactionId=" + req.TransactionID.String(),
	}

	var resp redirectURLResponse
	headers := map[string]string{"Correlation-Id": req.CorrelationID.String()}
	if err := c.http.PostJSON(ctx, redirectURLPath, headers, body, &resp); err != nil {
		return nil, err
	}

	timeout := resp.Timeout
	if timeout <= 0 {
		timeout = c.defaultTimeout
	}
	return &ports.RedirectURLResponse{
		URL:              resp.URL,
		PspTransactionID: resp.IDPSPTransaction,
		TimeoutMillis:    timeout,
	}, nil
}

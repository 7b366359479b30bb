// Package paymentmethods binds card sessions held by the payment-methods
// service to a transaction.
package paymentmethods

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"transactions-saga/internal/adapter/httpclient"
	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"
)

// Client implements ports.PaymentMethodsClient.
type Client struct {
	http *httpclient.Client
}

func NewClient(http *httpclient.Client) *Client {
	return &Client{http: http}
}

type updateSessionRequest struct {
	TransactionID string `json:"transactionId"`
}

type sessionResponse struct {
	SessionID string `json:"sessionId"`
	Brand     string `json:"brand"`
}

// UpdateSession attaches the transaction to the card session opened for orderID.
func (c *Client) UpdateSession(ctx context.Context, paymentMethodID, orderID string, transactionID domain.TransactionID) (*ports.CardSession, error) {
	path := fmt.Sprintf("/payment-methods/%s/sessions/%s", url.PathEscape(paymentMethodID), url.PathEscape(orderID))

	var resp sessionResponse
	err := c.http.Do(ctx, http.MethodPatch, path, nil, updateSessionRequest{TransactionID: transactionID.String()}, &resp)
	if err != nil {
		return nil, err
	}
	return &ports.CardSession{SessionID: resp.SessionID, Brand: resp.Brand}, nil
}

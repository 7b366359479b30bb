package paymentmethods

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"transactions-saga/config"
	"transactions-saga/internal/adapter/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/payment-methods/pm-cards/sessions/order-1", r.URL.Path)

		var body updateSessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "8f9c2a64d1e54b0c9a7e3f21b6d4c8e0", body.TransactionID)

		_, _ = w.Write([]byte(`{"sessionId":"card-sess-1","brand":"VISA"}`))
	}))
	defer srv.Close()

	c := NewClient(httpclient.New("payment-methods", config.UpstreamConfig{BaseURL: srv.URL}))
	session, err := c.UpdateSession(context.Background(), "pm-cards", "order-1", "8f9c2a64d1e54b0c9a7e3f21b6d4c8e0")
	require.NoError(t, err)
	assert.Equal(t, "card-sess-1", session.SessionID)
	assert.Equal(t, "VISA", session.Brand)
}

func TestUpdateSession_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(httpclient.New("payment-methods", config.UpstreamConfig{BaseURL: srv.URL}))
	_, err := c.UpdateSession(context.Background(), "pm-cards", "missing", "8f9c2a64d1e54b0c9a7e3f21b6d4c8e0")
	assert.Error(t, err)
}

package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"transactions-saga/config"
	"transactions-saga/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echo struct {
	Value string `json:"value"`
}

func TestClient_PostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/echo", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "corr-1", r.Header.Get("Correlation-Id"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in echo
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(echo{Value: in.Value + "!"})
	}))
	defer srv.Close()

	c := New("echo", config.UpstreamConfig{BaseURL: srv.URL + "/", APIKey: "secret", Timeout: time.Second})
	var out echo
	err := c.PostJSON(context.Background(), "/v1/echo", map[string]string{"Correlation-Id": "corr-1"}, echo{Value: "hi"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "hi!", out.Value)
	assert.Equal(t, "echo", c.Service())
}

func TestClient_StatusErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		recoverable bool
	}{
		{"server error", http.StatusInternalServerError, true},
		{"gateway timeout", http.StatusGatewayTimeout, true},
		{"too many requests", http.StatusTooManyRequests, true},
		{"bad request", http.StatusBadRequest, false},
		{"not found", http.StatusNotFound, false},
		{"unprocessable", http.StatusUnprocessableEntity, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"detail":"nope"}`))
			}))
			defer srv.Close()

			c := New("nodo", config.UpstreamConfig{BaseURL: srv.URL})
			err := c.PostJSON(context.Background(), "/close", nil, echo{}, nil)
			require.Error(t, err)

			var upstream *ports.UpstreamError
			require.True(t, errors.As(err, &upstream))
			assert.Equal(t, tt.status, upstream.StatusCode)
			assert.Equal(t, "nodo", upstream.Service)
			assert.Contains(t, upstream.Error(), "nope")
			assert.Equal(t, tt.recoverable, ports.IsRecoverable(err))
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New("npg", config.UpstreamConfig{BaseURL: url, Timeout: time.Second})
	err := c.PostJSON(context.Background(), "/build", nil, echo{}, nil)
	require.Error(t, err)

	var upstream *ports.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Zero(t, upstream.StatusCode)
	assert.True(t, upstream.Recoverable())
}

func TestClient_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	c := New("redirect", config.UpstreamConfig{BaseURL: srv.URL})
	var out echo
	err := c.Do(context.Background(), http.MethodGet, "/x", nil, nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

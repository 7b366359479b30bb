// Package httpclient is the JSON-over-HTTP transport shared by the adapters of
// external collaborators (clearing node, payment gateways, payment methods).
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"transactions-saga/config"
	"transactions-saga/internal/core/ports"
)

const maxErrorBody = 512

// Client sends JSON requests to one upstream service. Every failure is
// returned as *ports.UpstreamError so callers can classify it.
type Client struct {
	service string
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a client for the named service.
func New(service string, cfg config.UpstreamConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		service: service,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Service returns the upstream name used in errors.
func (c *Client) Service() string {
	return c.service
}

// Do sends in as JSON to path and decodes a 2xx response body into out.
// in and out may be nil.
func (c *Client) Do(ctx context.Context, method, path string, headers map[string]string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encoding request: %w", c.service, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: building request: %w", c.service, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &ports.UpstreamError{Service: c.service, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &ports.UpstreamError{
			Service:    c.service,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s %s: %s", method, path, strings.TrimSpace(string(snippet))),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return &ports.UpstreamError{
			Service:    c.service,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decoding response: %w", err),
		}
	}
	return nil
}

// PostJSON is Do with http.MethodPost.
func (c *Client) PostJSON(ctx context.Context, path string, headers map[string]string, in, out any) error {
	return c.Do(ctx, http.MethodPost, path, headers, in, out)
}

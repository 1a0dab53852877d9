// Package api is the typed gateway to the CareLoop backend. A single Client
// owns the transport; per-resource method sets live in the sibling files and
// normalize wire payloads into the canonical models before returning them.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"careloop/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client issues JSON requests against the remote API. It never retries and
// never recovers errors itself; every failure is forwarded as one of the
// typed errors in errors.go.
type Client struct {
	BaseURL   string
	Endpoints config.Endpoints
	HTTP      *http.Client
	SessionID string
	Log       *zap.Logger
}

// NewClient builds a client for the given base URL. Endpoint paths come from
// the loaded configuration; the session ID identifies this client run in
// request headers and logs.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		Endpoints: config.AppConfig.Endpoints,
		HTTP:      &http.Client{Timeout: timeout},
		SessionID: uuid.NewString(),
		Log:       logger,
	}
}

// Call performs one request. body (optional) is serialized as JSON; the
// response body is decoded into out when out is non-nil. The response must
// carry a JSON content type or the call fails with a ProtocolError holding
// the raw text; non-2xx JSON responses fail with an APIError carrying the
// server-supplied message.
func (c *Client) Call(ctx context.Context, method, path string, body any, out any) error {
	url := c.BaseURL + path

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-Session", c.SessionID)

	c.Log.Debug("api call", zap.String("method", method), zap.String("url", url))

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return &ProtocolError{ContentType: contentType, RawBody: string(raw)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		msg := fmt.Sprintf("API request failed with status %d", resp.StatusCode)
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error != "" {
			msg = apiErr.Error
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &ProtocolError{ContentType: contentType, RawBody: string(raw)}
		}
	}
	return nil
}

// get is shorthand for a GET with no request body.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.Call(ctx, http.MethodGet, path, nil, out)
}

// post is shorthand for a JSON POST.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.Call(ctx, http.MethodPost, path, body, out)
}

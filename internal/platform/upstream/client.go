// Package upstream holds the outbound HTTP client for the external
// hospital API. Every proxy endpoint goes through it: one request, one
// response, no retries. The caller's Authorization header is forwarded
// verbatim when present; its absence is not an error at this layer.
package upstream

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
)

// Payload is the body shape the hospital API responds with. Data is
// kept raw so proxy handlers can re-wrap it without re-interpreting.
type Payload struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DataOrEmptyList returns the payload data, substituting an empty JSON
// array when the backend sent null or nothing. List endpoints always
// hand the browser an array.
func (p *Payload) DataOrEmptyList() json.RawMessage {
	if len(p.Data) == 0 || string(p.Data) == "null" {
		return json.RawMessage("[]")
	}
	return p.Data
}

// StatusError reports a non-2xx upstream response. Payload carries the
// decoded body when the backend returned a JSON envelope.
type StatusError struct {
	Code    int
	Payload *Payload
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Code)
}

// IsUnauthorized reports whether err is an upstream 401.
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusUnauthorized
}

// AsStatusError unwraps err into a StatusError, if it is one.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	ok := errors.As(err, &se)
	return se, ok
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Do issues a single request against the upstream API. path is joined
// to the configured base URL. A non-nil body is sent as JSON. On 2xx
// the response body is decoded into a Payload; any other status yields
// a StatusError. Transport failures are returned unwrapped into the
// generic error path — the caller cannot (and must not) distinguish
// them from backend business failures.
func (c *Client) Do(ctx context.Context, method, path, authHeader string, body interface{}) (*Payload, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Code: resp.StatusCode}
		var p Payload
		if json.Unmarshal(raw, &p) == nil {
			se.Payload = &p
		}
		return nil, se
	}

	var p Payload
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode response body: %w", err)
		}
	}
	return &p, nil
}

func (c *Client) Get(ctx context.Context, path, authHeader string) (*Payload, error) {
	return c.Do(ctx, http.MethodGet, path, authHeader, nil)
}

func (c *Client) Post(ctx context.Context, path, authHeader string, body interface{}) (*Payload, error) {
	return c.Do(ctx, http.MethodPost, path, authHeader, body)
}

func (c *Client) Put(ctx context.Context, path, authHeader string, body interface{}) (*Payload, error) {
	return c.Do(ctx, http.MethodPut, path, authHeader, body)
}

func (c *Client) Patch(ctx context.Context, path, authHeader string, body interface{}) (*Payload, error) {
	return c.Do(ctx, http.MethodPatch, path, authHeader, body)
}

func (c *Client) Delete(ctx context.Context, path, authHeader string) (*Payload, error) {
	return c.Do(ctx, http.MethodDelete, path, authHeader, nil)
}

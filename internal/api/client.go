// Package api is the gateway to the TaskLite backend. It attaches the bearer
// token, speaks JSON, and classifies every response into one of three
// outcomes: success, unauthorized (session expired; callers must reset the
// session), or failure (an *APIError for explicit backend errors, or the
// wrapped transport error). No retries, no extra timeouts: a stalled request
// is bounded only by the caller's context or the injected http.Client.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrUnauthorized signals an invalid or expired session (HTTP 401). The
// uniform client response is: clear the session store, go to login. Never
// retried.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is an explicit backend failure (non-2xx, non-401).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("api: http %d", e.Status)
	}
	return fmt.Sprintf("api: http %d: %s", e.Status, e.Message)
}

// IsTransport reports whether err is a network-level failure: neither an
// explicit backend error nor an expired session. The project-create offline
// fallback keys off this.
func IsTransport(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUnauthorized) {
		return false
	}
	var ae *APIError
	return !errors.As(err, &ae)
}

// TokenSource yields the current bearer token, if any. The session store
// satisfies this.
type TokenSource interface {
	Token() (string, bool)
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     TokenSource
}

func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTPClient: http.DefaultClient,
		Tokens:     tokens,
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// do issues one request. body and out may be nil. out receives the decoded
// 2xx payload as-is; date strings are parsed by the model's time.Time fields.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Tokens != nil {
		if tok, ok := c.Tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	res, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(res.Body).Decode(&eb)
		return &APIError{Status: res.StatusCode, Message: strings.TrimSpace(eb.Error)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

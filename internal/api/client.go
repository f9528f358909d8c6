package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"time"
)

// Client talks to the spa booking API. All business logic lives
// server-side; this layer only types the wire shapes and surfaces
// failures uniformly.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
	Logger  *log.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, lg *log.Logger) *Client {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Logger:  lg,
		HTTP: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

// Error is a non-2xx response from the API. Message carries the
// server-provided text when the body had one, otherwise a generic
// fallback from the call site.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: status=%d %s", e.Status, e.Message)
}

// do issues a JSON request and decodes a 2xx body into out (skipped when
// out is nil). Any non-2xx status becomes an *Error regardless of code;
// fallback is used when the body carries no message field.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, fallback string) error {
	req, err := c.newJSONRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(resp, fallback)
	}
	return decodeJSON(resp, out)
}

func (c *Client) newJSONRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func decodeJSON(resp *http.Response, out interface{}) error {
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) apiError(resp *http.Response, fallback string) *Error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload struct {
		Message string `json:"message"`
	}
	msg := fallback
	if err := json.Unmarshal(b, &payload); err == nil && strings.TrimSpace(payload.Message) != "" {
		msg = payload.Message
	}
	return &Error{Status: resp.StatusCode, Message: msg}
}

// parseTS tolerates the timestamp layouts the API has been seen to emit.
func parseTS(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.000Z",
		"2006-01-02T15:04:05Z",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

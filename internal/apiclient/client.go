// Package apiclient is a small HTTP client for the mock API. It sets the base URL and
// credentials on every call and can record each exchange to an API log.
package apiclient

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

	"go.uber.org/zap"
)

// APIKeyHeader carries the optional API key.
const APIKeyHeader = "X-API-Key"

// Options configures a Client.
type Options struct {
	BaseURL string
	Token   string
	APIKey  string
	Timeout time.Duration
	// APILog receives one entry per request when set.
	APILog *zap.Logger
	// Console receives a one-line summary per request when set.
	Console io.Writer
}

// Client calls the mock API.
type Client struct {
	baseURL string
	token   string
	apiKey  string
	http    *http.Client
	apiLog  *zap.Logger
	console io.Writer
}

// Response is a fully read HTTP response.
type Response struct {
	Status   int
	Body     []byte
	Duration time.Duration
}

// New creates a client.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		token:   opts.Token,
		apiKey:  opts.APIKey,
		http:    &http.Client{Timeout: timeout},
		apiLog:  opts.APILog,
		console: opts.Console,
	}
}

// BaseURL returns the server root the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Anonymous returns a copy of the client that sends no credentials.
func (c *Client) Anonymous() *Client {
	cp := *c
	cp.token = ""
	cp.apiKey = ""
	return &cp
}

func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil)
}

// Do sends a request with an optional JSON body.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Response, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	out := &Response{Status: resp.StatusCode, Body: data, Duration: time.Since(start)}
	c.record(method, path, payload, out)
	return out, nil
}

// WaitForReset posts /__reset until the server answers with a 2xx, up to attempts times.
func (c *Client) WaitForReset(ctx context.Context, attempts int, pause time.Duration) error {
	var lastErr error
	for i := 0; i < attempts; i++ {
		res, err := c.Anonymous().Post(ctx, "/__reset", nil)
		if err == nil && res.Status >= 200 && res.Status < 300 {
			return nil
		}
		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("reset returned status %d", res.Status)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pause):
		}
	}
	if lastErr == nil {
		lastErr = errors.New("no attempts made")
	}
	return fmt.Errorf("API server not reachable on /__reset: %w", lastErr)
}

// JSON decodes the body into out.
func (r *Response) JSON(out any) error {
	if len(r.Body) == 0 {
		return errors.New("empty response body")
	}
	return json.Unmarshal(r.Body, out)
}

// Object decodes the body as a JSON object.
func (r *Response) Object() (map[string]any, error) {
	var out map[string]any
	if err := r.JSON(&out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errors.New("response is not a JSON object")
	}
	return out, nil
}

func (c *Client) record(method, path string, reqBody []byte, res *Response) {
	if c.apiLog != nil {
		var req any
		if len(reqBody) > 0 {
			req = json.RawMessage(reqBody)
		}
		c.apiLog.Info("api",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", res.Status),
			zap.Any("req", req),
			zap.String("res", string(res.Body)),
			zap.Int64("durationMs", res.Duration.Milliseconds()),
		)
	}
	if c.console != nil {
		fmt.Fprintf(c.console, "[API] %s %s %d\n", method, path, res.Status)
	}
}

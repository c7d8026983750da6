package arr

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// successBody is returned for 204 responses, which carry no payload.
var successBody = json.RawMessage(`{"status":"success"}`)

// Client issues requests against a single *arr instance. Construct one per
// tool call with [New]; the zero value is not usable.
type Client struct {
	conn       Connection
	httpClient *http.Client
	header     http.Header
	breaker    *Breaker
}

// Option customizes a Client created by [New].
type Option func(*Client)

// WithHeader adds a header to every request the client sends. Used by the
// servers to forward a caller's bearer token upstream in delegation mode.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.header.Set(key, value)
	}
}

// WithHTTPClient replaces the underlying HTTP client. Mostly useful in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBreaker guards the client's requests with br. Breakers outlive the
// per-call clients; the server hands the same breaker to every client for
// the same upstream.
func WithBreaker(br *Breaker) Option {
	return func(c *Client) {
		c.breaker = br
	}
}

// New creates a Client for the given connection. When conn.Verify is false
// the client skips TLS certificate verification, matching how the servers
// talk to self-hosted instances with self-signed certificates. No request
// timeout is imposed; cancellation is the caller's job via context.
func New(conn Connection, opts ...Option) *Client {
	c := &Client{
		conn: conn,
		httpClient: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: !conn.Verify},
			},
		},
		header: make(http.Header),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends one request and returns the response body as raw JSON.
//
// Behavior, in order:
//   - status >= 400 returns a [*StatusError] with the status and body text
//   - 204 No Content returns {"status":"success"}
//   - a non-JSON body is wrapped as {"status":"success","text":"<body>"}
//   - anything else is returned verbatim
//
// query may be nil; a non-nil body is JSON-encoded and sent with
// Content-Type application/json.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	u := strings.TrimRight(c.conn.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("arr client: encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("arr client: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.conn.APIKey != "" {
		req.Header.Set("X-Api-Key", c.conn.APIKey)
	}
	for key, values := range c.header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.send(req)
	if err != nil {
		return nil, fmt.Errorf("arr client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("arr client: read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &StatusError{Status: resp.StatusCode, Body: string(data)}
	}
	if resp.StatusCode == http.StatusNoContent {
		return successBody, nil
	}
	if !json.Valid(data) {
		wrapped, err := json.Marshal(map[string]string{
			"status": "success",
			"text":   string(data),
		})
		if err != nil {
			return nil, fmt.Errorf("arr client: wrap non-JSON response: %w", err)
		}
		return wrapped, nil
	}
	return data, nil
}

// send performs the HTTP exchange, routed through the breaker when one is
// set. Only transport errors and gateway statuses count against the breaker;
// a 404 from a healthy instance is the caller's problem, not an outage.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	if c.breaker == nil {
		return c.httpClient.Do(req)
	}

	var resp *http.Response
	err := c.breaker.Do(func() error {
		var err error
		resp, err = c.httpClient.Do(req)
		if err != nil {
			return err
		}
		switch resp.StatusCode {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return fmt.Errorf("upstream gateway status %d", resp.StatusCode)
		}
		return nil
	})
	if resp != nil {
		// A gateway status still flows back to the caller as a normal
		// response; its error above only feeds the breaker.
		return resp, nil
	}
	return nil, err
}

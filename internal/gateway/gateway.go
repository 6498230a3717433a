// Package gateway is a typed client for the robot-shop backend services.
// Every method issues exactly one HTTP request; there is no retry, caching or
// batching.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"robotshop-web/internal/metrics"

	"github.com/rs/zerolog"
)

const maxErrorBody = 4 << 10

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     zerolog.Logger
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

func New(cfg Config, logger zerolog.Logger) (*Client, error) {
	base := cfg.BaseURL
	if base == "" {
		base = "http://localhost:8080/"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", cfg.BaseURL)
	}

	return &Client{
		baseURL: u,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}, nil
}

// endpoint joins escaped path segments onto the base URL.
func (c *Client) endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		if s == "." || s == ".." {
			// dot segments would be collapsed during resolution
			escaped[i] = strings.Repeat("%2E", len(s))
			continue
		}
		escaped[i] = url.PathEscape(s)
	}

	rel := &url.URL{Path: strings.Join(segments, "/"), RawPath: strings.Join(escaped, "/")}
	return c.baseURL.ResolveReference(rel).String()
}

func (c *Client) get(ctx context.Context, op, endpoint string, out any) error {
	return c.do(ctx, op, http.MethodGet, endpoint, nil, out)
}

func (c *Client) do(ctx context.Context, op, method, endpoint string, body, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, op, method, endpoint, body, out)
	metrics.ObserveGatewayRequest(op, outcome(err), time.Since(start))

	if err != nil {
		c.logger.Warn().Err(err).Str("operation", op).Str("method", method).Str("url", endpoint).Msg("Backend request failed")
		return err
	}

	c.logger.Debug().
		Str("operation", op).
		Str("method", method).
		Str("url", endpoint).
		Dur("duration", time.Since(start)).
		Msg("Backend request completed")
	return nil
}

func (c *Client) roundTrip(ctx context.Context, op, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &NetworkError{Op: op, Method: method, URL: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Method: method, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &NetworkError{
			Op:         op,
			Method:     method,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Method: method, URL: endpoint, Err: err}
	}

	if out == nil {
		return nil
	}
	if raw, ok := out.(*[]byte); ok {
		*raw = data
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return "decode_error"
	}
	return "network_error"
}

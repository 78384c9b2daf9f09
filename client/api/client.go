package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// New creates a client for the campus backend. The token source supplies the
// bearer token for every request; pass nil for unauthenticated access.
func New(cfg Config, httpClient *http.Client, tokens oauth2.TokenSource) *Client {
	every := time.Duration(cfg.Every)
	if every <= 0 {
		every = time.Second
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 10
	}
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		tokens:     tokens,
		limiter:    rate.NewLimiter(rate.Every(every), burst),
	}
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	tokens     oauth2.TokenSource
	limiter    *rate.Limiter
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) do(ctx context.Context, method string, path string, body any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = buf
	}

	rq, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	rq.Header.Set("Content-Type", "application/json")
	rq.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return fmt.Errorf("failed to get access token: %w", err)
		}
		token.SetAuthHeader(rq)
	}

	rs, err := c.httpClient.Do(rq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer rs.Body.Close()

	if rs.StatusCode < http.StatusOK || rs.StatusCode >= http.StatusMultipleChoices {
		return newError(rs)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, rs.Body)
		return nil
	}

	logBuf := new(bytes.Buffer)
	bodyReader := io.TeeReader(rs.Body, logBuf)

	if err = json.NewDecoder(bodyReader).Decode(out); err != nil {
		slog.ErrorContext(ctx, "Failed to decode response", slog.String("path", path), slog.String("body", logBuf.String()), slog.Any("error", err))
		return fmt.Errorf("failed to decode response: %w", err)
	}
	slog.DebugContext(ctx, "API request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", rs.StatusCode),
		slog.String("body", logBuf.String()),
	)

	return nil
}

package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

const maxErrorBody = 4 << 10

// Client is an HTTP client with request pacing and retries.
type Client struct {
	HTTPClient *http.Client
	// Limiter is nil when pacing is disabled.
	Limiter *rate.Limiter

	maxRetries      uint64
	initialInterval time.Duration
	maxRetryTimeout time.Duration
}

// ClientOptions holds options for creating a new Client
type ClientOptions struct {
	Timeout time.Duration
	// RequestsPerSec <= 0 disables pacing.
	RequestsPerSec  float64
	MaxRetries      int
	InitialInterval time.Duration
	MaxRetryTimeout time.Duration
}

// NewClient creates a new HTTP client
func NewClient(opts ClientOptions) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.InitialInterval == 0 {
		opts.InitialInterval = 200 * time.Millisecond
	}
	if opts.MaxRetryTimeout == 0 {
		opts.MaxRetryTimeout = 30 * time.Second
	}

	c := &Client{
		HTTPClient:      &http.Client{Timeout: opts.Timeout},
		maxRetries:      uint64(opts.MaxRetries),
		initialInterval: opts.InitialInterval,
		maxRetryTimeout: opts.MaxRetryTimeout,
	}
	if opts.RequestsPerSec > 0 {
		burst := int(opts.RequestsPerSec)
		if burst < 1 {
			burst = 1
		}
		c.Limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSec), burst)
	}
	return c
}

// RequestFunc builds a fresh request for every attempt so bodies can be
// replayed.
type RequestFunc func(ctx context.Context) (*http.Request, error)

// DoRequest performs a request with pacing and exponential backoff. Transport
// errors, 429 and 5xx responses are retried; other non-2xx responses fail
// immediately with *HTTPStatusError. The caller closes the returned body.
func (c *Client) DoRequest(ctx context.Context, build RequestFunc) (*http.Response, error) {
	var resp *http.Response
	operation := func() error {
		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx); err != nil {
				return backoff.Permanent(err)
			}
		}

		req, err := build(ctx)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("build request: %w", err))
		}

		r, err := c.HTTPClient.Do(req)
		if err != nil {
			return err
		}
		if r.StatusCode >= 200 && r.StatusCode < 300 {
			resp = r
			return nil
		}

		body, _ := io.ReadAll(io.LimitReader(r.Body, maxErrorBody))
		r.Body.Close()
		statusErr := &HTTPStatusError{StatusCode: r.StatusCode, Body: body}
		if retryable(r.StatusCode) {
			return statusErr
		}
		return backoff.Permanent(statusErr)
	}

	strategy := backoff.NewExponentialBackOff()
	strategy.InitialInterval = c.initialInterval
	strategy.MaxElapsedTime = c.maxRetryTimeout

	var b backoff.BackOff = strategy
	b = backoff.WithMaxRetries(b, c.maxRetries)
	b = backoff.WithContext(b, ctx)

	if err := backoff.Retry(operation, b); err != nil {
		return nil, err
	}
	return resp, nil
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// HTTPStatusError represents a non-2xx response.
type HTTPStatusError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface
func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

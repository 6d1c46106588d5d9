// Package transport performs the single HTTP fetch of remote boundary data.
package transport

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/constants"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/logging"
)

// DefaultHTTPTimeout is the default timeout for one fetch.
var DefaultHTTPTimeout = constants.GeometryFetchTimeout

// Client fetches remote documents. It makes exactly one attempt per call.
type Client struct {
	http     *http.Client
	auth     Authenticator
	token    string
	maxBytes int64
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the overall timeout of one fetch.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithAuth applies auth with token to every request. An empty token disables it.
func WithAuth(auth Authenticator, token string) Option {
	return func(c *Client) {
		c.auth = auth
		c.token = token
	}
}

// WithMaxBytes limits how much of a response body is read.
func WithMaxBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

// New creates a new transport client.
func New(opts ...Option) *Client {
	c := &Client{
		http:     &http.Client{Timeout: DefaultHTTPTimeout},
		auth:     &NoAuth{},
		maxBytes: constants.MaxGeometryBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Timeout returns the configured fetch timeout.
func (c *Client) Timeout() time.Duration {
	return c.http.Timeout
}

// Do performs an HTTP request with authentication applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.auth != nil && c.token != "" {
		c.auth.Apply(req, c.token)
	}
	req.Header.Set("Accept", "application/geo+json, application/json;q=0.9, */*;q=0.5")
	return c.http.Do(req)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	return c.Do(req)
}

// Fetch downloads url and returns its body. Transport failures and non-2xx
// responses are returned as SourceErrors naming source; a timeout also
// satisfies errors.IsTimeout.
func (c *Client) Fetch(ctx context.Context, source, url string) ([]byte, error) {
	logger := logging.Ctx(ctx)
	start := time.Now()

	resp, err := c.Get(ctx, url)
	if err != nil {
		return nil, classify(ctx, source, url, err)
	}

	body, err := ReadBody(ctx, resp, c.maxBytes)
	if err != nil {
		return nil, errors.NewSourceError(source, url, resp.StatusCode, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewSourceError(source, url, resp.StatusCode, nil)
	}

	logger.Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("Fetched remote document")
	return body, nil
}

func classify(ctx context.Context, source, url string, err error) error {
	var timeout interface{ Timeout() bool }
	switch {
	case stderrors.Is(err, context.Canceled):
		return errors.WrapSource(source, url, fmt.Errorf("%w: %w", errors.ErrCanceled, err))
	case stderrors.Is(err, context.DeadlineExceeded),
		stderrors.As(err, &timeout) && timeout.Timeout(),
		ctx.Err() != nil && stderrors.Is(ctx.Err(), context.DeadlineExceeded):
		return errors.WrapSource(source, url, fmt.Errorf("%w: %w", errors.ErrTimeout, err))
	default:
		return errors.WrapSource(source, url, err)
	}
}

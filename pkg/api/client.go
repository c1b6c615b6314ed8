// Package api implements the HTTP client for the Web3.Storage REST API:
// upload, retrieve, status, header and list operations authenticated with a
// bearer token. Every method is a single synchronous request/response
// exchange; failures surface the underlying transport or HTTP error to the
// caller without retries.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ipfs/go-cid"
	"go.uber.org/zap"

	"github.com/shamank/web3storage-sdk-go/pkg/config"
)

// MaxUploadSize is the service-imposed per-request upload limit (100 MiB).
const MaxUploadSize = 100 << 20

// Client is the Web3.Storage API client. It holds the bearer token resolved
// at construction time and is immutable afterwards; a single Client is safe
// for concurrent use.
type Client struct {
	endpoint   *url.URL
	token      string
	httpClient *http.Client
	timeouts   config.Timeouts
	debug      bool
	checkCID   bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, e.g. to install a
// custom transport or TLS configuration.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithCIDCheck enables client-side CID validation: identifiers are parsed
// before a request is issued and unparseable ones fail with ErrInvalidCID.
// By default the CID is passed through opaquely and left to the service.
func WithCIDCheck() Option {
	return func(c *Client) {
		c.checkCID = true
	}
}

// New constructs an API client from the supplied configuration. The
// configuration is validated first, which resolves the bearer token from
// the token file when no inline token is set. Construction fails with an
// error wrapping ErrConfiguration when no token can be resolved or the
// endpoint URL is malformed.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	endpoint, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: bad endpoint %q: %v", ErrConfiguration, cfg.Endpoint, err)
	}

	c := &Client{
		endpoint:   endpoint,
		token:      cfg.Token,
		httpClient: &http.Client{},
		timeouts:   cfg.Timeouts.WithDefaults(),
		debug:      cfg.Debug,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Token returns the bearer token held by the client.
func (c *Client) Token() string {
	return c.token
}

// Endpoint returns the base API URL the client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// newRequest builds a request against the API endpoint with bearer
// authentication applied.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("bad request path %q: %w", path, err)
	}
	full := c.endpoint.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, method, full.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	return req, nil
}

// do executes req and maps non-2xx responses onto a ResponseError. The
// response body of failed requests is drained and closed; successful
// responses are returned with the body still open.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	reqID := ""
	if c.debug {
		reqID = uuid.NewString()
		zap.L().Debug("api request",
			zap.String("request_id", reqID),
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if c.debug {
		zap.L().Debug("api response",
			zap.String("request_id", reqID),
			zap.Int("status", resp.StatusCode))
	}

	if resp.StatusCode >= 400 {
		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			return nil, fmt.Errorf("read error body: %w", readErr)
		}
		return nil, newResponseError(resp.StatusCode, body)
	}
	return resp, nil
}

// ensureDeadline applies d as the context deadline when the caller's context
// has none. The returned cancel func must always be called.
func ensureDeadline(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok || d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// checkContentID rejects empty identifiers always, and unparseable ones when
// CID checking is enabled.
func (c *Client) checkContentID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty cid", ErrInvalidCID)
	}
	if !c.checkCID {
		return nil
	}
	if _, err := cid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidCID, id, err)
	}
	return nil
}

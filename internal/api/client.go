package api

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.keepa.com"

// Defaults for transient failure handling and the per-attempt HTTP
// timeout.
const (
	DefaultMaxAttempts  = 3
	DefaultRetryBackoff = 30 * time.Second
	DefaultTimeout      = 30 * time.Second
)

// Client provides access to the Keepa product-data REST API.
//
// A Client keeps the envelope of its most recent exchange for diagnostics
// (see LastResponse) and is therefore not safe for concurrent use.
// Requests are issued strictly one at a time: usage is metered by
// server-side tokens and parallel dispatch only drains them faster.
type Client struct {
	baseURL    string
	accessKey  string
	domain     Domain
	httpClient *http.Client
	logger     *logrus.Logger

	maxAttempts  int
	retryBackoff time.Duration

	last *ResponseMeta
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates an API client for the given access key. domain is the
// default marketplace for requests that do not override it.
func NewClient(accessKey string, domain Domain, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		accessKey: accessKey,
		domain:    domain,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger:       logrus.StandardLogger(),
		maxAttempts:  DefaultMaxAttempts,
		retryBackoff: DefaultRetryBackoff,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithBaseURL points the client at a different API host.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRetries sets the total number of attempts per exchange and the
// pause between them.
func WithRetries(attempts int, backoff time.Duration) ClientOption {
	return func(c *Client) {
		c.maxAttempts = attempts
		c.retryBackoff = backoff
	}
}

// WithLogger sets the logger.
func WithLogger(logger *logrus.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// Domain returns the client's default marketplace.
func (c *Client) Domain() Domain {
	return c.domain
}

// LastResponse returns the envelope of the most recent wire exchange,
// including the server's token accounting. It is nil before the first
// request and is overwritten by every attempt, failed calls included.
func (c *Client) LastResponse() *ResponseMeta {
	return c.last
}

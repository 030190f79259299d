package regclient

import (
	"net/http"
	"time"
)

// Doer is the minimal http.Client interface we depend on (handy for tests/mocks).
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// apiPrefix is the fixed version prefix all operation paths are rooted at.
const apiPrefix = "/v2"

// Client is a stateless registrar API client. Every method is a single
// request/response exchange; it holds no mutable session state and is safe
// for concurrent use as long as the underlying Doer is.
type Client struct {
	hc          Doer
	baseURL     string
	apiKey      string
	ua          string
	baseTimeout time.Duration
	headerExtra http.Header
}

// New returns a ready Client with good defaults.
func New(opts ...Option) *Client {
	c := &Client{
		hc:          defaultHTTPClient(),
		baseURL:     "https://api.domainregistry.example",
		ua:          "regclient/0.1 (+https://example.invalid)",
		baseTimeout: 10 * time.Second,
		headerExtra: make(http.Header),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func defaultHTTPClient() *http.Client { return &http.Client{Timeout: 15 * time.Second} }

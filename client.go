package dropbox

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/tomblancdev/dropbox-go/endpoint"
	"github.com/tomblancdev/dropbox-go/header"
	"github.com/tomblancdev/dropbox-go/internal/transport"
)

const (
	// defaultTimeout of zero leaves call duration to the context deadline.
	defaultTimeout     = 0
	defaultMaxBodySize = transport.DefaultMaxBodySize
)

// HTTPClients holds the two HTTP clients a Client dispatches through: Sync
// for blocking calls and Async for calls started with Call.
//
// Construct them once, at the top of the program, and share them. The SDK
// never modifies them.
type HTTPClients struct {
	Sync  *http.Client
	Async *http.Client
}

// NewHTTPClients returns a pair of clients with independent connection pools.
func NewHTTPClients() HTTPClients {
	return HTTPClients{
		Sync:  &http.Client{Transport: newTransport()},
		Async: &http.Client{Transport: newTransport()},
	}
}

func newTransport() http.RoundTripper {
	if t, ok := http.DefaultTransport.(*http.Transport); ok {
		return t.Clone()
	}
	return http.DefaultTransport
}

// Client is the Dropbox API client.
//
// A Client holds no per-call state; it is safe for concurrent use by
// multiple goroutines.
type Client struct {
	clients      HTTPClients
	registry     *endpoint.Registry
	testHosts    *endpoint.TestHosts
	userAgent    string
	timeout      time.Duration
	headers      []header.Header
	interceptors []Interceptor
	compression  bool
	maxBodySize  int64
	formats      strfmt.Registry

	mu    sync.RWMutex
	token string
}

// NewClient creates a new Dropbox client.
//
// Without [WithHTTPClients] or [WithHTTPClient], a fresh pair from
// [NewHTTPClients] is used. The only error is an incomplete [WithTestHosts].
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		userAgent:   defaultUserAgent(),
		timeout:     defaultTimeout,
		compression: true,
		maxBodySize: defaultMaxBodySize,
		formats:     strfmt.Default,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.clients.Sync == nil || c.clients.Async == nil {
		defaults := NewHTTPClients()
		if c.clients.Sync == nil {
			c.clients.Sync = defaults.Sync
		}
		if c.clients.Async == nil {
			c.clients.Async = defaults.Async
		}
	}

	reg, err := endpoint.NewRegistry(c.testHosts)
	if err != nil {
		return nil, err
	}
	c.registry = reg

	return c, nil
}

// SetToken sets the access token used by requests that carry none.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the client's default access token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Registry returns the endpoint registry the client resolves URLs with.
func (c *Client) Registry() *endpoint.Registry {
	return c.registry
}

// modes returns the endpoint modes for blocking and asynchronous calls.
func (c *Client) modes() (sync, async endpoint.Mode) {
	if c.registry.IsTest() {
		return endpoint.TestSync, endpoint.TestAsync
	}
	return endpoint.Production, endpoint.Production
}

func defaultUserAgent() string {
	return "dropbox-go/" + Version
}

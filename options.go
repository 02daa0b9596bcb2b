package dropbox

import (
	"net/http"
	"time"

	"github.com/tomblancdev/dropbox-go/endpoint"
	"github.com/tomblancdev/dropbox-go/header"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClients sets the blocking and asynchronous HTTP clients.
func WithHTTPClients(clients HTTPClients) Option {
	return func(c *Client) {
		c.clients = clients
	}
}

// WithHTTPClient uses httpClient for both blocking and asynchronous calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.clients = HTTPClients{Sync: httpClient, Async: httpClient}
	}
}

// WithTimeout bounds every exchange. Zero, the default, leaves the bound to
// the context deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithToken sets the default access token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTestHosts rewrites every endpoint onto two local servers: sync
// receives blocking calls, async receives calls started with Call. Both are
// host:port pairs and both are required.
func WithTestHosts(sync, async string) Option {
	return func(c *Client) {
		c.testHosts = &endpoint.TestHosts{Sync: sync, Async: async}
	}
}

// WithInterceptors appends call interceptors. The first one runs outermost.
func WithInterceptors(interceptors ...Interceptor) Option {
	return func(c *Client) {
		c.interceptors = append(c.interceptors, interceptors...)
	}
}

// WithSelectUser acts as the given team member, by member id.
func WithSelectUser(memberID string) Option {
	return func(c *Client) {
		c.headers = append(c.headers, header.Static(header.SelectUser, memberID))
	}
}

// WithPathRoot sets the namespace paths are relative to. pathRoot is the JSON
// value of the Dropbox-API-Path-Root header, e.g. {".tag": "root", "root": "123"}.
func WithPathRoot(pathRoot string) Option {
	return func(c *Client) {
		c.headers = append(c.headers, header.Static(header.PathRoot, pathRoot))
	}
}

// WithCompression controls whether compressed responses are requested.
// It is enabled by default.
func WithCompression(enabled bool) Option {
	return func(c *Client) {
		c.compression = enabled
	}
}

// WithMaxResponseSize bounds the bytes read from a response body.
func WithMaxResponseSize(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBodySize = n
		}
	}
}

package dropbox

import (
	"context"
	"io"

	"github.com/tomblancdev/dropbox-go/endpoint"
	"github.com/tomblancdev/dropbox-go/header"
)

// Style selects where a route carries its arguments.
type Style int

const (
	// RPC routes send the arguments as the JSON body.
	RPC Style = iota

	// Upload routes send file content as the body and the arguments in the
	// Dropbox-API-Arg header.
	Upload
)

func (s Style) String() string {
	if s == Upload {
		return "upload"
	}
	return "rpc"
}

// Void is the argument or result type of routes that take or return nothing.
type Void struct{}

// Route describes one operation: which endpoint it calls, the headers it
// requires and how its arguments travel. Arg and Res are the JSON argument
// and result types.
//
// Namespace packages declare one Route per operation:
//
//	var echoRoute = dropbox.Route[EchoArg, EchoResult]{
//	    Endpoint: endpoint.CheckApp,
//	    Headers:  header.JSON,
//	}
type Route[Arg, Res any] struct {
	Endpoint endpoint.ID
	Headers  header.Spec
	Style    Style

	// NoAuth routes send no Authorization header.
	NoAuth bool
}

// New returns a request for the route. An empty token falls back to the
// client's token at call time. A nil arg sends no body.
func (r Route[Arg, Res]) New(token string, arg *Arg) *Request[Arg, Res] {
	return &Request[Arg, Res]{route: r, Token: token, Arg: arg}
}

// NewUpload returns a request whose body is content.
func (r Route[Arg, Res]) NewUpload(token string, arg *Arg, content io.Reader) *Request[Arg, Res] {
	return &Request[Arg, Res]{route: r, Token: token, Arg: arg, Content: content}
}

// Request is one call: a credential and an optional typed payload. The SDK
// only reads it. A Request whose Content has been consumed cannot be sent
// again.
type Request[Arg, Res any] struct {
	route Route[Arg, Res]

	Token   string
	Arg     *Arg
	Content io.Reader
}

// Endpoint returns the endpoint the request is sent to.
func (r *Request[Arg, Res]) Endpoint() endpoint.ID {
	return r.route.Endpoint
}

// CallSync performs the call and blocks until it completes.
//
// A successful call whose response has no body returns a nil result and a
// nil error. Every failure is an *Error.
func (r *Request[Arg, Res]) CallSync(ctx context.Context, c *Client) (*Res, error) {
	mode, _ := c.modes()
	pc, err := prepare(c, r, mode, false)
	if err != nil {
		return nil, err
	}
	return execute[Res](ctx, c, pc)
}

// Call starts the call in its own goroutine and returns immediately.
//
// The returned error only reports a request that could not be started, such
// as arguments that fail validation. The outcome of the call itself is
// delivered through the Pending, with the same results CallSync would give.
// Cancelling ctx aborts the call.
func (r *Request[Arg, Res]) Call(ctx context.Context, c *Client) (*Pending[Res], error) {
	_, mode := c.modes()
	pc, err := prepare(c, r, mode, true)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	p := newPending[Res](pc.info.Endpoint, cancel)
	go func() {
		defer cancel()
		p.resolve(execute[Res](ctx, c, pc))
	}()
	return p, nil
}

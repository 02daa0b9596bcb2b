// Package transport performs the HTTP exchange of a single API call.
//
// Each exchange is submitted as a go-openapi client operation: request
// headers, body and timeout go through a request writer, the bearer token
// through an auth writer, and the raw response is captured by a response
// reader. Classifying the response is left to the caller.
package transport

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/go-openapi/runtime"
	httptransport "github.com/go-openapi/runtime/client"
	"github.com/go-openapi/strfmt"

	"github.com/tomblancdev/dropbox-go/header"
)

// DefaultMaxBodySize bounds the bytes read from a response body.
const DefaultMaxBodySize = 32 << 20

// Request describes one exchange.
type Request struct {
	// OperationID names the operation, e.g. "files/list_folder".
	OperationID string

	// URL is the absolute URL to POST to.
	URL string

	// Token is the bearer credential. Empty sends no Authorization header.
	Token string

	// Headers are attached in order.
	Headers []header.Pair

	// ContentType is the media type of Body.
	ContentType string

	// Body is the request body, nil for none.
	Body io.Reader

	// Timeout bounds the whole exchange. Zero means no timeout beyond the
	// context deadline.
	Timeout time.Duration

	// MaxBodySize bounds the response bytes read. Zero selects
	// DefaultMaxBodySize.
	MaxBodySize int64
}

// Response is the raw outcome of a completed exchange.
type Response struct {
	StatusCode int

	// Body holds the response body as received, still content-encoded.
	Body []byte

	// Truncated is set when the body exceeded the size limit.
	Truncated bool

	ContentType     string
	ContentEncoding string
	RetryAfter      string
}

// IsSuccess reports whether the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Do performs the exchange described by req with client.
//
// A non-nil error means the exchange did not complete: the request could not
// be built or sent, or the response body could not be read. Any status code,
// including failures, is reported through the Response.
func Do(ctx context.Context, client *http.Client, req *Request) (*Response, error) {
	u, err := url.Parse(req.URL)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", req.URL, err)
	}

	guarded := *client
	guarded.Transport = mediaTypeGuard{next: client.Transport}

	rt := httptransport.NewWithClient(u.Host, "/", []string{u.Scheme}, &guarded)
	// The reader classifies every response itself, whatever its media type.
	rt.Consumers["*/*"] = runtime.ByteStreamConsumer()

	var auth runtime.ClientAuthInfoWriter = httptransport.PassThroughAuth
	if req.Token != "" {
		auth = httptransport.BearerToken(req.Token)
	}

	var consumes []string
	if req.ContentType != "" {
		consumes = []string{req.ContentType}
	}

	result, err := rt.Submit(&runtime.ClientOperation{
		ID:                 req.OperationID,
		Method:             http.MethodPost,
		PathPattern:        u.Path,
		ProducesMediaTypes: []string{runtime.JSONMime},
		ConsumesMediaTypes: consumes,
		Schemes:            []string{u.Scheme},
		Params:             writeRequest(req, u.Query()),
		AuthInfo:           auth,
		Reader:             readResponse(req.maxBodySize()),
		Context:            ctx,
		Client:             &guarded,
	})
	if err != nil {
		return nil, err
	}

	resp, ok := result.(*Response)
	if !ok {
		return nil, fmt.Errorf("unexpected response type %T", result)
	}
	return resp, nil
}

func (r *Request) maxBodySize() int64 {
	if r.MaxBodySize > 0 {
		return r.MaxBodySize
	}
	return DefaultMaxBodySize
}

func writeRequest(req *Request, query url.Values) runtime.ClientRequestWriter {
	return runtime.ClientRequestWriterFunc(func(r runtime.ClientRequest, _ strfmt.Registry) error {
		for _, h := range req.Headers {
			if err := r.SetHeaderParam(h.Name, h.Value); err != nil {
				return err
			}
		}
		for name, values := range query {
			if err := r.SetQueryParam(name, values...); err != nil {
				return err
			}
		}
		if req.Body != nil {
			if err := r.SetBodyParam(req.Body); err != nil {
				return err
			}
		}
		return r.SetTimeout(req.Timeout)
	})
}

func readResponse(limit int64) runtime.ClientResponseReader {
	return runtime.ClientResponseReaderFunc(func(resp runtime.ClientResponse, _ runtime.Consumer) (any, error) {
		body, err := io.ReadAll(io.LimitReader(resp.Body(), limit+1))
		if err != nil {
			return nil, fmt.Errorf("read response body: %w", err)
		}

		out := &Response{
			StatusCode:      resp.Code(),
			ContentType:     contentType(resp),
			ContentEncoding: resp.GetHeader("Content-Encoding"),
			RetryAfter:      resp.GetHeader("Retry-After"),
		}
		if int64(len(body)) > limit {
			body = body[:limit]
			out.Truncated = true
		}
		out.Body = body
		return out, nil
	})
}

// originalContentType carries a Content-Type replaced by mediaTypeGuard.
const originalContentType = "X-Dropbox-Go-Original-Content-Type"

// mediaTypeGuard replaces a response Content-Type that cannot be parsed with
// application/octet-stream, so the runtime hands the response to the reader
// instead of failing the exchange. The original value is kept in
// originalContentType.
type mediaTypeGuard struct {
	next http.RoundTripper
}

func (g mediaTypeGuard) RoundTrip(req *http.Request) (*http.Response, error) {
	next := g.next
	if next == nil {
		next = http.DefaultTransport
	}

	resp, err := next.RoundTrip(req)
	if err != nil || resp == nil {
		return resp, err
	}

	if ct := resp.Header.Get(runtime.HeaderContentType); ct != "" {
		if _, _, perr := mime.ParseMediaType(ct); perr != nil {
			resp.Header.Set(originalContentType, ct)
			resp.Header.Set(runtime.HeaderContentType, runtime.DefaultMime)
		}
	}
	return resp, nil
}

func contentType(resp runtime.ClientResponse) string {
	if ct := resp.GetHeader(originalContentType); ct != "" {
		return ct
	}
	return resp.GetHeader(runtime.HeaderContentType)
}

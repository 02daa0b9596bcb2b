package dropbox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/tomblancdev/dropbox-go/endpoint"
	"github.com/tomblancdev/dropbox-go/header"
	"github.com/tomblancdev/dropbox-go/internal/transport"
)

// maxErrorBodySize bounds the diagnostic body kept on remote errors.
const maxErrorBodySize = 4096

// validator is implemented by argument types that check themselves before
// being sent.
type validator interface {
	Validate(formats strfmt.Registry) error
}

// preparedCall is a call with its URL, headers and body fixed. Both
// execution modes run the same preparedCall through execute.
type preparedCall struct {
	info       CallInfo
	httpClient *http.Client
	request    transport.Request
}

// prepare resolves the endpoint, serializes the payload once and builds the
// outgoing request. It fails only when the payload cannot be validated or
// encoded, in which case nothing is sent.
func prepare[Arg, Res any](c *Client, r *Request[Arg, Res], mode endpoint.Mode, async bool) (*preparedCall, error) {
	route := r.route
	name := route.Endpoint.String()

	payload, err := encodePayload(c.formats, r.Arg)
	if err != nil {
		return nil, newError(KindRequest, name, "invalid arguments", err)
	}

	token := r.Token
	if token == "" {
		token = c.Token()
	}
	if route.NoAuth {
		token = ""
	}

	headers := route.Headers.Resolve(payload)
	headers = append(headers, header.Spec(c.headers).Resolve(payload)...)
	if c.userAgent != "" {
		headers = append(headers, header.Pair{Name: "User-Agent", Value: c.userAgent})
	}
	if c.compression {
		headers = append(headers, header.Pair{Name: "Accept-Encoding", Value: transport.AcceptEncoding})
	}

	var body io.Reader
	switch route.Style {
	case Upload:
		body = r.Content
	default:
		if payload != nil {
			body = bytes.NewReader(payload)
		}
	}

	httpClient := c.clients.Sync
	if async {
		httpClient = c.clients.Async
	}

	url := c.registry.URL(route.Endpoint, mode)
	return &preparedCall{
		info: CallInfo{
			Endpoint: name,
			Async:    async,
			URL:      url,
		},
		httpClient: httpClient,
		request: transport.Request{
			OperationID: name,
			URL:         url,
			Token:       token,
			Headers:     headers,
			ContentType: route.Headers.ContentType(),
			Body:        body,
			Timeout:     c.timeout,
			MaxBodySize: c.maxBodySize,
		},
	}, nil
}

// encodePayload validates and serializes arg. A nil arg has no payload.
func encodePayload[Arg any](formats strfmt.Registry, arg *Arg) ([]byte, error) {
	if arg == nil {
		return nil, nil
	}
	if v, ok := any(arg).(validator); ok {
		if err := v.Validate(formats); err != nil {
			return nil, err
		}
	}
	data, err := json.Marshal(arg)
	if err != nil {
		return nil, fmt.Errorf("encode arguments: %w", err)
	}
	return data, nil
}

// execute runs a prepared call through the interceptor chain and classifies
// the outcome. A nil result with a nil error is an empty-body success.
func execute[Res any](ctx context.Context, c *Client, pc *preparedCall) (*Res, error) {
	var result *Res

	exchange := func(ctx context.Context, info *CallInfo) error {
		resp, err := transport.Do(ctx, pc.httpClient, &pc.request)
		if err != nil {
			return newError(KindRequest, info.Endpoint, "request failed", err)
		}
		info.Status = resp.StatusCode

		if !resp.IsSuccess() {
			return remoteError(info.Endpoint, resp, c.maxBodySize)
		}

		res, err := decodeResult[Res](info.Endpoint, resp, c.maxBodySize)
		if err != nil {
			return err
		}
		info.Empty = res == nil
		result = res
		return nil
	}

	info := pc.info
	if err := chainInterceptors(c.interceptors, exchange)(ctx, &info); err != nil {
		return nil, callError(info.Endpoint, err)
	}
	return result, nil
}

// decodeResult decodes a 2xx response body into a *Res. An empty body
// decodes to nil.
func decodeResult[Res any](name string, resp *transport.Response, limit int64) (*Res, error) {
	parsingError := func(message string, cause error) error {
		e := newError(KindParsing, name, message, cause)
		e.Status = resp.StatusCode
		return e
	}

	if resp.Truncated {
		return nil, parsingError("response body too large", transport.ErrBodyTooLarge)
	}

	if len(resp.Body) == 0 {
		return nil, nil
	}
	body, err := transport.DecodeBody(resp.ContentEncoding, resp.Body, limit)
	if err != nil {
		return nil, parsingError("could not decode response body", err)
	}
	if len(body) == 0 {
		return nil, nil
	}

	var out Res
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, parsingError("could not decode result", err)
	}
	return &out, nil
}

// remoteError builds the KindRemote error for a non-2xx response. The body is
// kept for diagnostics and never decoded as a result.
func remoteError(name string, resp *transport.Response, limit int64) *Error {
	e := newError(KindRemote, name, statusMessage(resp.StatusCode), nil)
	e.Status = resp.StatusCode
	e.RetryAfter = parseRetryAfter(resp.RetryAfter, time.Now())

	body := resp.Body
	if decoded, err := transport.DecodeBody(resp.ContentEncoding, body, limit); err == nil {
		body = decoded
	}
	if len(body) > maxErrorBodySize {
		body = body[:maxErrorBodySize]
	}
	e.Body = body

	var envelope struct {
		ErrorSummary string `json:"error_summary"`
	}
	if json.Unmarshal(body, &envelope) == nil {
		e.Summary = envelope.ErrorSummary
	}
	return e
}

func statusMessage(status int) string {
	if text := http.StatusText(status); text != "" {
		return fmt.Sprintf("%d %s", status, text)
	}
	return fmt.Sprintf("status %d", status)
}

// parseRetryAfter reads a Retry-After value given in seconds or as an HTTP
// date.
func parseRetryAfter(value string, now time.Time) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}

// callError ensures every failure surfaced to the caller is an *Error.
func callError(name string, err error) error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return newError(KindRequest, name, "call interrupted", err)
}

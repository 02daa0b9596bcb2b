package dropbox

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind classifies a failed call. The set is closed.
type Kind int

const (
	// KindRequest means the call could not be dispatched or completed at the
	// transport layer: invalid payload, connection refused, timeout, DNS or
	// TLS failure, or a cancelled context.
	KindRequest Kind = iota + 1

	// KindParsing means a successful response body could not be decoded into
	// the operation's result type.
	KindParsing

	// KindRemote means the exchange completed with a non-2xx status.
	KindRemote
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindParsing:
		return "parsing"
	case KindRemote:
		return "remote"
	}
	return "unknown"
}

// Error is returned by every failed call.
//
// Only the SDK constructs Error values. Inspect them with [errors.As], or
// compare against the sentinels with [errors.Is]:
//
//	_, err := files.GetMetadata("", arg).CallSync(ctx, client)
//	switch {
//	case errors.Is(err, dropbox.ErrEndpoint):
//	    // route-specific failure, e.g. path/not_found
//	case errors.Is(err, dropbox.ErrRateLimited):
//	    var apiErr *dropbox.Error
//	    errors.As(err, &apiErr)
//	    time.Sleep(apiErr.RetryAfter)
//	}
type Error struct {
	Kind Kind

	// Endpoint is the route name of the failed call, e.g. "files/list_folder".
	Endpoint string

	Message string

	// Status is the HTTP status code. Zero unless Kind is KindRemote or
	// KindParsing.
	Status int

	// Summary is the error_summary field of a route-specific error body,
	// e.g. "path/not_found/..".
	Summary string

	// Body holds the start of the response body of a remote failure. It is
	// diagnostic only.
	Body []byte

	// RetryAfter is the delay the server asked for, when it sent one.
	RetryAfter time.Duration

	Cause error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Summary != "" {
		msg += ": " + e.Summary
	}
	if e.Cause != nil {
		return fmt.Sprintf("dropbox: %s: %s: %s: %v", e.Kind, e.Endpoint, msg, e.Cause)
	}
	return fmt.Sprintf("dropbox: %s: %s: %s", e.Kind, e.Endpoint, msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches sentinel errors by kind, and by status when the sentinel has one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Status == 0 || t.Status == e.Status
}

// Sentinel errors for use with errors.Is.
var (
	ErrRequest = &Error{Kind: KindRequest, Message: "request failed"}
	ErrParsing = &Error{Kind: KindParsing, Message: "response could not be decoded"}
	ErrRemote  = &Error{Kind: KindRemote, Message: "remote service error"}

	ErrBadRequest   = &Error{Kind: KindRemote, Message: "bad input parameter", Status: http.StatusBadRequest}
	ErrUnauthorized = &Error{Kind: KindRemote, Message: "invalid or expired access token", Status: http.StatusUnauthorized}
	ErrForbidden    = &Error{Kind: KindRemote, Message: "access denied", Status: http.StatusForbidden}
	ErrEndpoint     = &Error{Kind: KindRemote, Message: "endpoint-specific error", Status: http.StatusConflict}
	ErrRateLimited  = &Error{Kind: KindRemote, Message: "too many requests", Status: http.StatusTooManyRequests}
	ErrServer       = &Error{Kind: KindRemote, Message: "internal server error", Status: http.StatusInternalServerError}
)

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == kind
}

// AsError returns the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func newError(kind Kind, endpoint, message string, cause error) *Error {
	return &Error{
		Kind:     kind,
		Endpoint: endpoint,
		Message:  message,
		Cause:    cause,
	}
}

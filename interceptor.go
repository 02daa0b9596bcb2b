package dropbox

import "context"

// CallInfo describes a call to interceptors. The SDK fills in Status and
// Empty once the exchange completes.
type CallInfo struct {
	// Endpoint is the route name, e.g. "files/upload".
	Endpoint string

	// Async is set for calls started with Call.
	Async bool

	// URL is the resolved URL.
	URL string

	// Status is the HTTP status code, zero when no response was received.
	Status int

	// Empty is set when a successful response had no body.
	Empty bool
}

// Invoker runs the rest of a call.
type Invoker func(ctx context.Context, info *CallInfo) error

// Interceptor wraps calls. It may act before and after invoking next, or
// return without invoking it. A non-nil error that is not an *Error is
// reported to the caller as a KindRequest error.
//
//	func timing(ctx context.Context, info *dropbox.CallInfo, next dropbox.Invoker) error {
//	    start := time.Now()
//	    err := next(ctx, info)
//	    log.Printf("%s took %v", info.Endpoint, time.Since(start))
//	    return err
//	}
type Interceptor func(ctx context.Context, info *CallInfo, next Invoker) error

// chainInterceptors combines interceptors into one invoker around final.
// The first interceptor is the outermost.
func chainInterceptors(interceptors []Interceptor, final Invoker) Invoker {
	chain := final
	for i := len(interceptors) - 1; i >= 0; i-- {
		current := interceptors[i]
		next := chain
		chain = func(ctx context.Context, info *CallInfo) error {
			return current(ctx, info, next)
		}
	}
	return chain
}

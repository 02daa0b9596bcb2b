// Package middleware provides call interceptors for dropbox.Client: structured
// logging, Prometheus metrics, OpenTelemetry tracing and client-side rate
// limiting.
//
// Interceptors are installed when the client is built. The first one listed is
// the outermost:
//
//	client, err := dropbox.NewClient(
//	    dropbox.WithToken(token),
//	    dropbox.WithInterceptors(
//	        middleware.Tracing(nil),
//	        middleware.Logging(logger),
//	        middleware.NewMetrics(prometheus.DefaultRegisterer).Interceptor(),
//	        middleware.RateLimit(rate.NewLimiter(10, 20)),
//	    ),
//	)
package middleware

import "github.com/tomblancdev/dropbox-go"

// mode names the execution mode of a call for logs and labels.
func mode(info *dropbox.CallInfo) string {
	if info.Async {
		return "async"
	}
	return "sync"
}

package middleware

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tomblancdev/dropbox-go"
)

const tracerName = "github.com/tomblancdev/dropbox-go/middleware"

// Tracing creates an interceptor that wraps each call in a client span. A nil
// provider uses the global one.
func Tracing(tp trace.TracerProvider) dropbox.Interceptor {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	tracer := tp.Tracer(tracerName, trace.WithInstrumentationVersion(dropbox.Version))

	return func(ctx context.Context, info *dropbox.CallInfo, next dropbox.Invoker) error {
		ctx, span := tracer.Start(ctx, "dropbox "+info.Endpoint,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("dropbox.endpoint", info.Endpoint),
				attribute.String("dropbox.mode", mode(info)),
				attribute.String("http.request.method", http.MethodPost),
				attribute.String("url.full", info.URL),
			),
		)
		defer span.End()

		err := next(ctx, info)

		if info.Status != 0 {
			span.SetAttributes(attribute.Int("http.response.status_code", info.Status))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			if apiErr, ok := dropbox.AsError(err); ok {
				span.SetAttributes(attribute.String("dropbox.error.kind", apiErr.Kind.String()))
			}
			return err
		}
		return nil
	}
}

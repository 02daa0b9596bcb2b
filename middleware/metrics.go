package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomblancdev/dropbox-go"
)

// Metrics records call counts, latencies and calls in flight.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight *prometheus.GaugeVec
}

// NewMetrics registers the collectors with reg. A nil reg leaves them
// unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dropbox",
			Subsystem: "client",
			Name:      "calls_total",
			Help:      "Calls by endpoint, mode, status code and error kind.",
		}, []string{"endpoint", "mode", "code", "kind"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dropbox",
			Subsystem: "client",
			Name:      "call_duration_seconds",
			Help:      "Call latency, including time spent in inner interceptors.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint", "mode"}),
		inFlight: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "dropbox",
			Subsystem: "client",
			Name:      "calls_in_flight",
			Help:      "Calls started and not yet finished.",
		}, []string{"mode"}),
	}
}

// Interceptor returns the interceptor that feeds m.
func (m *Metrics) Interceptor() dropbox.Interceptor {
	return func(ctx context.Context, info *dropbox.CallInfo, next dropbox.Invoker) error {
		md := mode(info)
		gauge := m.inFlight.WithLabelValues(md)
		gauge.Inc()
		defer gauge.Dec()

		start := time.Now()
		err := next(ctx, info)

		m.duration.WithLabelValues(info.Endpoint, md).Observe(time.Since(start).Seconds())
		m.calls.WithLabelValues(info.Endpoint, md, strconv.Itoa(info.Status), kindLabel(err)).Inc()
		return err
	}
}

// kindLabel is "none" for successful calls.
func kindLabel(err error) string {
	if err == nil {
		return "none"
	}
	if apiErr, ok := dropbox.AsError(err); ok {
		return apiErr.Kind.String()
	}
	return dropbox.KindRequest.String()
}

package race

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Metrics struct {
	requests    metric.Int64Counter
	requestTime metric.Int64Histogram
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	requests, err := meter.Int64Counter("http_requests", metric.WithDescription("http requests served"))
	if err != nil {
		return nil, fmt.Errorf("failed to create http_requests counter: %w", err)
	}

	reqTime, err := meter.Int64Histogram("http_request_duration", metric.WithDescription("http request duration"), metric.WithUnit("ms"))
	if err != nil {
		return nil, fmt.Errorf("failed to create http_request_duration histogram: %w", err)
	}

	return &Metrics{
		requests:    requests,
		requestTime: reqTime,
	}, nil
}

// Middleware records one request and its duration, labelled by route pattern so unknown paths
// do not create new series.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		attrs := metric.WithAttributes(
			attribute.String("route", route),
			attribute.String("method", r.Method),
			attribute.String("status", strconv.Itoa(ww.Status())),
		)
		m.requests.Add(r.Context(), 1, attrs)
		m.requestTime.Record(r.Context(), time.Since(start).Milliseconds(), attrs)
	})
}

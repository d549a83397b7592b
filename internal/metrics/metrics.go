package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	api "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Metrics holds the meter used by all components of a binary and the registry it is exported
// through.
type Metrics struct {
	Meter    api.Meter
	Errors   api.Int64Counter
	registry *prometheus.Registry
}

// New creates a meter provider backed by a Prometheus exporter with its own registry, and the
// shared error counter.
func New(name string) (*Metrics, error) {
	registry := prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	meter := provider.Meter(name)

	errors, err := meter.Int64Counter("errors", api.WithDescription("errors returned by external calls"))
	if err != nil {
		return nil, fmt.Errorf("creating error counter: %w", err)
	}

	return &Metrics{
		Meter:    meter,
		Errors:   errors,
		registry: registry,
	}, nil
}

// Handler serves the Prometheus exposition of everything recorded on the meter.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Component returns the attribute option used to tag error counts by component.
func Component(name string) api.MeasurementOption {
	return api.WithAttributes(attribute.String("component", name))
}

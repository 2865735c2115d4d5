package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "deliveryhub/orders"

// InitMeterProvider installs a Prometheus-backed MeterProvider, starts Go runtime metrics
// and returns the /metrics handler with a shutdown function.
func InitMeterProvider(serviceVersion string) (http.Handler, func(context.Context) error, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(newResource(serviceVersion)),
	)
	otel.SetMeterProvider(mp)

	if err = runtime.Start(
		runtime.WithMeterProvider(mp),
		runtime.WithMinimumReadMemStatsInterval(15*time.Second),
	); err != nil {
		return nil, nil, err
	}

	return promhttp.Handler(), mp.Shutdown, nil
}

// OrderMetrics counts committed order workflow operations.
// Exposed as orders_created_total and order_status_transitions_total{status}.
type OrderMetrics struct {
	created     metric.Int64Counter
	transitions metric.Int64Counter
}

// NewOrderMetrics registers the counters on the global MeterProvider.
func NewOrderMetrics() (*OrderMetrics, error) {
	return NewOrderMetricsWithProvider(otel.GetMeterProvider())
}

func NewOrderMetricsWithProvider(provider metric.MeterProvider) (*OrderMetrics, error) {
	meter := provider.Meter(meterName)

	created, err := meter.Int64Counter("orders_created",
		metric.WithDescription("Orders committed by order creation"))
	if err != nil {
		return nil, err
	}

	transitions, err := meter.Int64Counter("order_status_transitions",
		metric.WithDescription("Committed order status transitions by target status"))
	if err != nil {
		return nil, err
	}

	return &OrderMetrics{created: created, transitions: transitions}, nil
}

func (m *OrderMetrics) RecordOrderCreated(ctx context.Context) {
	m.created.Add(ctx, 1)
}

func (m *OrderMetrics) RecordStatusTransition(ctx context.Context, status string) {
	m.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

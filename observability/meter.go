package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/cognito-gateway/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Endpoint       string
	Insecure       bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// InitMeter initializes the OpenTelemetry meter provider and installs it
// globally. The caller shuts it down on exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(ctx, config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments for handler requests and provider calls.
type Metrics struct {
	requestTotal      metric.Int64Counter
	requestDuration   metric.Float64Histogram
	requestActive     metric.Int64UpDownCounter
	operationTotal    metric.Int64Counter
	operationDuration metric.Float64Histogram
	errorTotal        metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	requestTotal, err := meter.Int64Counter("auth.request.total",
		metric.WithDescription("Handled auth requests by handler and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating auth.request.total counter: %w", err)
	}

	requestDuration, err := meter.Float64Histogram("auth.request.duration",
		metric.WithDescription("Duration of auth requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating auth.request.duration histogram: %w", err)
	}

	requestActive, err := meter.Int64UpDownCounter("auth.request.active",
		metric.WithDescription("Auth requests in flight"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating auth.request.active counter: %w", err)
	}

	operationTotal, err := meter.Int64Counter("cognito.operation.total",
		metric.WithDescription("Identity provider calls by operation and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cognito.operation.total counter: %w", err)
	}

	operationDuration, err := meter.Float64Histogram("cognito.operation.duration",
		metric.WithDescription("Duration of identity provider calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cognito.operation.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("error.total",
		metric.WithDescription("Errors by code and component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating error.total counter: %w", err)
	}

	return &Metrics{
		requestTotal:      requestTotal,
		requestDuration:   requestDuration,
		requestActive:     requestActive,
		operationTotal:    operationTotal,
		operationDuration: operationDuration,
		errorTotal:        errorTotal,
	}, nil
}

// RecordRequestStart increments the in-flight request count.
func (m *Metrics) RecordRequestStart(ctx context.Context, handler string) {
	if m == nil {
		return
	}
	m.requestActive.Add(ctx, 1, metric.WithAttributes(attribute.String("handler", handler)))
}

// RecordRequestEnd decrements in-flight requests and records the completed
// request with its HTTP status.
func (m *Metrics) RecordRequestEnd(ctx context.Context, handler string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	h := attribute.String("handler", handler)
	m.requestActive.Add(ctx, -1, metric.WithAttributes(h))
	m.requestTotal.Add(ctx, 1, metric.WithAttributes(h, attribute.Int("status", status)))
	m.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(h))
}

// RecordOperation records one identity provider call.
func (m *Metrics) RecordOperation(ctx context.Context, operation, status string, duration time.Duration) {
	if m == nil {
		return
	}
	op := attribute.String("operation", operation)
	m.operationTotal.Add(ctx, 1, metric.WithAttributes(op, attribute.String("status", status)))
	m.operationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(op))
}

// RecordError records an error by code and component.
func (m *Metrics) RecordError(ctx context.Context, code, component string) {
	if m == nil {
		return
	}
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("code", code),
		attribute.String("component", component),
	))
}

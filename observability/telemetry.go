package observability

import (
	"context"
	stderrors "errors"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Telemetry owns the providers created by Setup.
type Telemetry struct {
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider

	// Metrics is nil when telemetry is disabled.
	Metrics *Metrics
}

// Setup installs the global tracer and meter providers when cfg.Enabled.
func Setup(ctx context.Context, cfg Config, info ServiceInfo) (*Telemetry, error) {
	if !cfg.Enabled {
		return &Telemetry{}, nil
	}

	tp, err := InitTracer(ctx, TracerConfig{
		ServiceName:    info.Name,
		ServiceVersion: info.Version,
		Environment:    info.Environment,
		Endpoint:       cfg.Endpoint,
		Insecure:       cfg.Insecure,
		SampleRate:     cfg.SampleRate,
	})
	if err != nil {
		return nil, err
	}

	mp, err := InitMeter(ctx, MeterConfig{
		ServiceName:    info.Name,
		ServiceVersion: info.Version,
		Environment:    info.Environment,
		Endpoint:       cfg.Endpoint,
		Insecure:       cfg.Insecure,
		Interval:       cfg.Interval,
	})
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}

	metrics, err := NewMetrics(mp.Meter(instrumentationName))
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, err
	}

	return &Telemetry{tracerProvider: tp, meterProvider: mp, Metrics: metrics}, nil
}

// Enabled reports whether Setup installed real providers.
func (t *Telemetry) Enabled() bool {
	return t != nil && t.tracerProvider != nil
}

// ForceFlush exports buffered spans and metrics. Lambda handlers call it
// before returning because the sandbox may freeze right after.
func (t *Telemetry) ForceFlush(ctx context.Context) error {
	if !t.Enabled() {
		return nil
	}
	return stderrors.Join(
		t.tracerProvider.ForceFlush(ctx),
		t.meterProvider.ForceFlush(ctx),
	)
}

// Shutdown flushes and stops both providers.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if !t.Enabled() {
		return nil
	}
	if err := stderrors.Join(
		t.tracerProvider.Shutdown(ctx),
		t.meterProvider.Shutdown(ctx),
	); err != nil {
		return fmt.Errorf("telemetry shutdown: %w", err)
	}
	return nil
}

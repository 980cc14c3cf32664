package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// useRecorder installs an in-memory tracer provider for the test.
func useRecorder(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return exporter
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, a := range attrs {
		if string(a.Key) == key {
			return a.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}

	enabled := Config{Enabled: true}
	enabled.ApplyDefaults()
	if enabled.SampleRate != 0 {
		t.Errorf("explicit zero sample rate should be kept when enabled, got %f", enabled.SampleRate)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"disabled", Config{}, false},
		{"enabled", Config{Enabled: true, Endpoint: "otel:4318", SampleRate: 0.5}, false},
		{"rate too high", Config{SampleRate: 1.5}, true},
		{"negative rate", Config{SampleRate: -0.1}, true},
		{"enabled without endpoint", Config{Enabled: true}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("expected error=%v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestSetupDisabled(t *testing.T) {
	tel, err := Setup(context.Background(), Config{}, ServiceInfo{Name: "login"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tel.Enabled() {
		t.Error("expected disabled telemetry")
	}
	if tel.Metrics != nil {
		t.Error("expected nil metrics when disabled")
	}
	if err := tel.ForceFlush(context.Background()); err != nil {
		t.Errorf("ForceFlush on disabled telemetry: %v", err)
	}
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown on disabled telemetry: %v", err)
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{2.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
	}
	for _, tc := range tests {
		if got := sampler(tc.rate).Description(); got != tc.want {
			t.Errorf("sampler(%v): expected %s, got %s", tc.rate, tc.want, got)
		}
	}
	if got := sampler(0.5).Description(); got == "AlwaysOnSampler" || got == "AlwaysOffSampler" {
		t.Errorf("expected ratio sampler, got %s", got)
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource(context.Background(), "signup", "1.2.3", "staging")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := attrValue(res.Attributes(), "service.name")
	if !ok || v.AsString() != "signup" {
		t.Errorf("expected service.name=signup, got %v", v)
	}
	v, ok = attrValue(res.Attributes(), "environment")
	if !ok || v.AsString() != "staging" {
		t.Errorf("expected environment=staging, got %v", v)
	}
}

func TestNewMetrics(t *testing.T) {
	metrics, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}

	ctx := context.Background()
	metrics.RecordRequestStart(ctx, "handler.login")
	metrics.RecordRequestEnd(ctx, "handler.login", 200, 100*time.Millisecond)
	metrics.RecordOperation(ctx, "cognito.login", "ok", 50*time.Millisecond)
	metrics.RecordError(ctx, "NotAuthorizedException", "cognito")
}

func TestMetricsNilReceiver(t *testing.T) {
	var m *Metrics
	ctx := context.Background()
	m.RecordRequestStart(ctx, "h")
	m.RecordRequestEnd(ctx, "h", 500, time.Second)
	m.RecordOperation(ctx, "op", "error", time.Second)
	m.RecordError(ctx, "code", "component")
}

func TestMetricsRecorded(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	metrics, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()
	metrics.RecordOperation(ctx, "cognito.sign_up", "ok", 10*time.Millisecond)
	metrics.RecordOperation(ctx, "cognito.sign_up", "ok", 10*time.Millisecond)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "cognito.operation.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("unexpected data type %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	if total != 2 {
		t.Errorf("expected 2 recorded operations, got %d", total)
	}
}

func TestStartOperation(t *testing.T) {
	exporter := useRecorder(t)

	ctx, op := StartOperation(context.Background(), "gateway", "handler.login", "req-1", nil)
	if OperationFromContext(ctx) != op {
		t.Fatal("expected operation in context")
	}
	if op.RequestID != "req-1" || op.StartTime.IsZero() {
		t.Errorf("unexpected operation %+v", op)
	}
	op.End(ctx, 200, nil)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name != "handler.login" {
		t.Errorf("expected span name handler.login, got %s", span.Name)
	}
	if v, ok := attrValue(span.Attributes, AttrRequestID); !ok || v.AsString() != "req-1" {
		t.Errorf("expected request id attribute, got %v", v)
	}
	if v, ok := attrValue(span.Attributes, AttrStatusCode); !ok || v.AsInt64() != 200 {
		t.Errorf("expected status attribute 200, got %v", v)
	}
	if span.Status.Code == codes.Error {
		t.Error("2xx should not mark the span as failed")
	}
}

func TestOperationEndWithError(t *testing.T) {
	exporter := useRecorder(t)
	metrics, _ := NewMetrics(noop.NewMeterProvider().Meter("test"))

	ctx, op := StartOperation(context.Background(), "gateway", "handler.refresh", "req-2", metrics)
	op.End(ctx, 500, fmt.Errorf("provider unavailable"))

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("expected error status, got %v", spans[0].Status.Code)
	}
	if len(spans[0].Events) == 0 {
		t.Error("expected the error to be recorded as an event")
	}
}

func TestOperationFromContext_NotSet(t *testing.T) {
	if OperationFromContext(context.Background()) != nil {
		t.Error("expected nil when no operation was started")
	}
}

func TestOperation_Duration(t *testing.T) {
	op := &Operation{StartTime: time.Now().Add(-50 * time.Millisecond)}
	if d := op.Duration(); d < 45*time.Millisecond || d > 5*time.Second {
		t.Errorf("expected duration around 50ms, got %v", d)
	}
}

func TestSetSpanAttributeAndError(t *testing.T) {
	exporter := useRecorder(t)

	ctx, span := StartSpan(context.Background(), "test-attrs")
	SetSpanAttribute(ctx, "string-key", "value")
	SetSpanAttribute(ctx, "int-key", 42)
	SetSpanAttribute(ctx, "int64-key", int64(100))
	SetSpanAttribute(ctx, "bool-key", true)
	SetSpanAttribute(ctx, "unsupported-key", struct{}{})
	SetSpanError(ctx, fmt.Errorf("test error"))
	span.End()

	got := exporter.GetSpans()[0]
	if _, ok := attrValue(got.Attributes, "unsupported-key"); ok {
		t.Error("unsupported types should be ignored")
	}
	if v, ok := attrValue(got.Attributes, "int-key"); !ok || v.AsInt64() != 42 {
		t.Errorf("expected int-key=42, got %v", v)
	}
	if len(got.Events) != 1 {
		t.Errorf("expected one error event, got %d", len(got.Events))
	}
}

func TestSetSpanNoSpan(t *testing.T) {
	ctx := context.Background()
	SetSpanAttribute(ctx, "key", "value")
	SetSpanError(ctx, fmt.Errorf("no span error"))
}

type staticChecker Health

func (c staticChecker) CheckHealth(context.Context) Health { return Health(c) }

func TestServiceHealth_AddComponent(t *testing.T) {
	sh := NewServiceHealth("gateway", "1.0.0")
	if sh.Status != HealthStatusUp {
		t.Errorf("expected Status 'up', got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "cognito", Status: HealthStatusUp})
	if sh.Status != HealthStatusUp {
		t.Errorf("expected status 'up' after healthy component, got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "telemetry", Status: HealthStatusDegraded})
	if sh.Status != HealthStatusDegraded {
		t.Errorf("expected status 'degraded', got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "x", Status: HealthStatusDown})
	if sh.Status != HealthStatusDown {
		t.Errorf("expected status 'down', got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "y", Status: HealthStatusDegraded})
	if sh.Status != HealthStatusDown {
		t.Errorf("expected 'down' not overridden by 'degraded', got %s", sh.Status)
	}
}

func TestCheck(t *testing.T) {
	sh := Check(context.Background(), "gateway", "1.0.0",
		staticChecker{Name: "cognito", Status: HealthStatusUp},
		staticChecker{Name: "other", Status: HealthStatusDegraded},
	)
	if sh.Status != HealthStatusDegraded {
		t.Errorf("expected degraded, got %s", sh.Status)
	}
	if len(sh.Components) != 2 {
		t.Errorf("expected 2 components, got %d", len(sh.Components))
	}
}

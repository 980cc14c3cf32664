package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Operation tracks one handler invocation: its span, its start time and the
// request metrics it reports when it ends.
type Operation struct {
	ServiceName   string
	OperationName string
	RequestID     string
	StartTime     time.Time

	metrics *Metrics
	span    trace.Span
}

type operationKey struct{}

// StartOperation opens a span named after the operation and records the
// request start. metrics may be nil.
func StartOperation(ctx context.Context, service, operation, requestID string, metrics *Metrics) (context.Context, *Operation) {
	op := &Operation{
		ServiceName:   service,
		OperationName: operation,
		RequestID:     requestID,
		StartTime:     time.Now(),
		metrics:       metrics,
	}

	ctx, op.span = StartSpan(ctx, operation, trace.WithSpanKind(trace.SpanKindServer))
	op.span.SetAttributes(
		attribute.String(AttrServiceName, service),
		attribute.String(AttrOperationName, operation),
		attribute.String(AttrRequestID, requestID),
	)
	metrics.RecordRequestStart(ctx, operation)

	return context.WithValue(ctx, operationKey{}, op), op
}

// OperationFromContext retrieves the Operation started for ctx, or nil.
func OperationFromContext(ctx context.Context) *Operation {
	if op, ok := ctx.Value(operationKey{}).(*Operation); ok {
		return op
	}
	return nil
}

// End closes the span and records the request outcome. Statuses of 500 and
// above mark the span as failed.
func (op *Operation) End(ctx context.Context, status int, err error) {
	duration := op.Duration()

	if err != nil {
		op.span.RecordError(err)
	}
	if status >= 500 {
		op.span.SetStatus(codes.Error, "server error")
	}
	op.span.SetAttributes(
		attribute.Int(AttrStatusCode, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	op.span.End()

	op.metrics.RecordRequestEnd(ctx, op.OperationName, status, duration)
}

// Duration returns the elapsed time since the operation started.
func (op *Operation) Duration() time.Duration {
	return time.Since(op.StartTime)
}

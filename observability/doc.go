// Package observability wires OpenTelemetry tracing and metrics.
//
// Telemetry is optional. When disabled, the global no-op providers stay in
// place and Setup returns a Telemetry whose Metrics is nil; every recorder in
// this package tolerates that.
//
//	tel, err := observability.Setup(ctx, cfg.Telemetry, observability.ServiceInfo{Name: "login"})
//	defer tel.Shutdown(ctx)
//
//	ctx, op := observability.StartOperation(ctx, "login", "handler.login", reference, tel.Metrics)
//	defer op.End(ctx, status, err)
package observability

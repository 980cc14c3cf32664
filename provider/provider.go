package provider

import "context"

// Provider is the base interface all providers implement.
type Provider interface {
	// Name returns the operation name used in logs, spans and metrics.
	Name() string
	// IsAvailable reports whether the provider is ready to handle requests.
	IsAvailable(ctx context.Context) bool
}

// RequestResponse takes one input and returns one output or one error.
type RequestResponse[I, O any] interface {
	Provider
	Execute(ctx context.Context, input I) (O, error)
}

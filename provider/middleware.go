package provider

import "github.com/kbukum/cognito-gateway/errors"

// Middleware wraps a RequestResponse provider.
type Middleware[I, O any] func(RequestResponse[I, O]) RequestResponse[I, O]

// Chain composes middlewares. The first one is outermost: it runs first on
// the way in and last on the way out.
func Chain[I, O any](middlewares ...Middleware[I, O]) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}

// errorCode returns the AppError code carried by err, or "error".
func errorCode(err error) string {
	if appErr, ok := errors.AsAppError(err); ok && appErr.Code != "" {
		return string(appErr.Code)
	}
	return "error"
}

package provider

import (
	"context"
	"net/http"
	"time"

	"github.com/kbukum/cognito-gateway/errors"
	"github.com/kbukum/cognito-gateway/logger"
)

// WithLogging logs each Execute call with its duration. Client errors log at
// warn, everything else that fails at error.
func WithLogging[I, O any](log *logger.Logger) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return &loggingRR[I, O]{inner: inner, log: log}
	}
}

type loggingRR[I, O any] struct {
	inner RequestResponse[I, O]
	log   *logger.Logger
}

func (l *loggingRR[I, O]) Name() string                         { return l.inner.Name() }
func (l *loggingRR[I, O]) IsAvailable(ctx context.Context) bool { return l.inner.IsAvailable(ctx) }

func (l *loggingRR[I, O]) Execute(ctx context.Context, input I) (O, error) {
	start := time.Now()
	output, err := l.inner.Execute(ctx, input)

	log := l.log.WithContext(ctx)
	fields := logger.DurationFields(l.inner.Name(), time.Since(start))
	if err == nil {
		log.Debug("provider call ok", fields)
		return output, nil
	}

	fields[logger.FieldError] = err.Error()
	fields[logger.FieldCode] = errorCode(err)
	if appErr, ok := errors.AsAppError(err); ok {
		fields[logger.FieldStatus] = appErr.Status()
		if appErr.Status() < http.StatusInternalServerError {
			log.Warn("provider call rejected", fields)
			return output, err
		}
	}
	log.Error("provider call failed", fields)
	return output, err
}

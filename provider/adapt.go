package provider

import (
	"context"

	"github.com/kbukum/cognito-gateway/errors"
)

// Mapping stages reported in the "stage" detail of a mapping failure.
const (
	StageRequest  = "request"
	StageResponse = "response"
)

// Adapt exposes a backend RequestResponse[BI, BO] as RequestResponse[I, O].
//
// mapIn builds the backend request and mapOut shapes its response. A mapping
// failure that is not already an AppError becomes an internal error carrying
// the operation name and stage; the backend is not called when mapIn fails.
// Backend errors are returned unchanged.
func Adapt[I, O, BI, BO any](
	inner RequestResponse[BI, BO],
	name string,
	mapIn func(ctx context.Context, input I) (BI, error),
	mapOut func(output BO) (O, error),
) RequestResponse[I, O] {
	return &adapted[I, O, BI, BO]{inner: inner, name: name, mapIn: mapIn, mapOut: mapOut}
}

type adapted[I, O, BI, BO any] struct {
	inner  RequestResponse[BI, BO]
	name   string
	mapIn  func(ctx context.Context, input I) (BI, error)
	mapOut func(output BO) (O, error)
}

func (a *adapted[I, O, BI, BO]) Name() string { return a.name }

func (a *adapted[I, O, BI, BO]) IsAvailable(ctx context.Context) bool {
	return a.inner.IsAvailable(ctx)
}

func (a *adapted[I, O, BI, BO]) Execute(ctx context.Context, input I) (O, error) {
	var zero O
	req, err := a.mapIn(ctx, input)
	if err != nil {
		return zero, a.mappingError(StageRequest, err)
	}
	resp, err := a.inner.Execute(ctx, req)
	if err != nil {
		return zero, err
	}
	out, err := a.mapOut(resp)
	if err != nil {
		return zero, a.mappingError(StageResponse, err)
	}
	return out, nil
}

func (a *adapted[I, O, BI, BO]) mappingError(stage string, err error) error {
	if _, ok := errors.AsAppError(err); ok {
		return err
	}
	return errors.Internal(err).WithDetails(map[string]any{
		"operation": a.name,
		"stage":     stage,
	})
}

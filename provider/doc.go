// Package provider models each identity provider operation as a generic
// RequestResponse so cross-cutting behavior can be layered on uniformly.
//
// A raw SDK call is lifted with Func, its request and response types are
// mapped onto domain types with Adapt, and the result is wrapped with
// middleware:
//
//	raw := provider.Func("cognito.login", func(ctx context.Context, in *cip.InitiateAuthInput) (*cip.InitiateAuthOutput, error) {
//	    return api.InitiateAuth(ctx, in)
//	})
//	login := provider.Adapt(raw, "cognito.login", toInitiateAuthInput, toAuthResult)
//	login = provider.Chain(
//	    provider.WithLogging[LoginInput, *AuthResult](log),
//	    provider.WithTracing[LoginInput, *AuthResult]("cognito"),
//	    provider.WithMetrics[LoginInput, *AuthResult](metrics),
//	)(login)
//
// Chain(a, b, c)(p) is a(b(c(p))): the first middleware is outermost.
package provider

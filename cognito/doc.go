// Package cognito wraps the Cognito user pool operations used by the auth
// handlers.
//
// Every operation performs exactly one provider request. Requests that the
// app client requires a SECRET_HASH for carry one computed with SecretHash.
// Provider failures come back as *errors.AppError values carrying the
// provider's error code, message and HTTP status (500 when the failure
// never reached an HTTP response).
//
//	client, err := cognito.New(ctx, cfg.Cognito)
//	tokens, err := client.Login(ctx, "alice@example.com", "s3cret!")
package cognito

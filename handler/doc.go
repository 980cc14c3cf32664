// Package handler implements the API Gateway proxy handlers of the auth
// endpoints: sign-up, login, forgot password, change password and token
// refresh.
//
// Each handler extracts its parameters, checks the required ones in order,
// makes one call to the identity provider and shapes the outcome with the
// response package. Failures never escape as Go errors; they are carried by
// the response envelope.
//
//	h := handler.New(client, handler.WithLogger(logger.Get("handler")))
//	lambda.Start(h.Login)
package handler

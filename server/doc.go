// Package server runs the auth handlers behind a local HTTP server.
//
// Each HTTP request is converted into the API Gateway proxy event the Lambda
// runtime would deliver, passed to the same handler.Func, and the proxy
// response is written back. The server is backed by Gin with h2c support.
//
// # Routes
//
//   - POST /auth/signup, /auth/login, /auth/forgot-password
//     (parameters in the query string)
//   - POST /auth/change-password, /auth/refresh (JSON body)
//   - GET /health, /version
//
// # Middleware
//
// Built-in middleware (server/middleware), applied around every route:
//
//   - Recovery: panic recovery with structured logging
//   - RequestID: X-Request-Id generation and propagation
//   - CORS: Access-Control-Allow-Origin: * and preflight handling
//   - BodySizeLimit: request body size limit
//   - RequestLogger: request logging with duration tracking
package server

// Package errors provides the structured error type shared by every handler.
// An AppError carries a machine-readable code, the message returned to the
// caller and the HTTP status the response envelope should use.
package errors

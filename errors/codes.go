package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Request errors
const (
	// ErrCodeBadRequest indicates a malformed request or a missing parameter.
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeExternalService indicates an error from the identity provider
	// that carried no code of its own.
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
)

package errors

import (
	"fmt"
	"net/http"
)

// UnknownMessage is reported when an error carries no message.
const UnknownMessage = "Unknown Exception"

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code. Provider errors keep the
	// provider's own code (e.g. "NotAuthorizedException").
	Code ErrorCode `json:"code"`
	// Message is the human-readable message returned to the caller.
	Message string `json:"message"`
	// HTTPStatus is the status code of the response envelope.
	HTTPStatus int `json:"-"`
	// Details contains additional context for logs.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Status returns HTTPStatus, or 500 when it is unset.
func (e *AppError) Status() int {
	if e.HTTPStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.HTTPStatus
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// --- Common Error Constructors ---

// BadRequest creates a 400 error. The message is "Bad Request." followed by
// detail when one is given.
func BadRequest(detail string) *AppError {
	return &AppError{
		Code: ErrCodeBadRequest, Message: withDetail("Bad Request.", detail),
		HTTPStatus: http.StatusBadRequest,
	}
}

// NotFound creates a 404 error. The message is "Not Found." followed by
// detail when one is given.
func NotFound(detail string) *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Message: withDetail("Not Found.", detail),
		HTTPStatus: http.StatusNotFound,
	}
}

// MissingParameter creates the 400 error raised for an absent required parameter.
func MissingParameter(name string) *AppError {
	return BadRequest("Missing required parameter: "+name).WithDetail("field", name)
}

// Internal creates a new AppError for an internal server error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred. Please try again or contact support.",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}

// ExternalServiceError creates a 500 error for a provider failure that
// carried no structured code, message or status.
func ExternalServiceError(service string, cause error) *AppError {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return &AppError{
		Code: ErrCodeExternalService, Message: msg,
		HTTPStatus: http.StatusInternalServerError,
		Details:    map[string]any{"service": service}, Cause: cause,
	}
}

func withDetail(prefix, detail string) string {
	if detail == "" {
		return prefix
	}
	return prefix + " " + detail
}

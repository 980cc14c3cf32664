package errors

import (
	stderrors "errors"
)

// ErrorResponse is the JSON body returned to clients on failure.
type ErrorResponse struct {
	Error     string `json:"Error"`
	Reference string `json:"Reference"`
}

// ToResponse converts an AppError to an ErrorResponse for JSON serialization.
// reference is the request trace id included for support correlation.
func (e *AppError) ToResponse(reference string) ErrorResponse {
	msg := e.Message
	if msg == "" {
		msg = UnknownMessage
	}
	return ErrorResponse{
		Error:     msg,
		Reference: reference,
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Wrap returns err as an AppError: AppErrors anywhere in the chain are
// returned as-is, anything else becomes an Internal error keeping the
// original message. Wrap(nil) is nil.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	appErr := Internal(err)
	appErr.Message = err.Error()
	return appErr
}

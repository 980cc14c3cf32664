package cognito

import (
	stderrors "errors"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"

	"github.com/kbukum/cognito-gateway/errors"
)

const serviceName = "cognito"

// Provider error codes the handlers act on.
const (
	CodeUsernameExists = "UsernameExistsException"
	CodeUserNotFound   = "UserNotFoundException"
	CodeNotAuthorized  = "NotAuthorizedException"
)

// AccountExistsMessage is the provider message for a sign-up whose email is
// already registered.
const AccountExistsMessage = "An account with the given email already exists."

// translateError converts an SDK error into an *errors.AppError carrying the
// provider's code, message and HTTP status. Errors that never produced an
// HTTP response (network, context cancellation) become 500s.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := errors.AsAppError(err); ok {
		return err
	}

	status, requestID := responseInfo(err)

	var apiErr smithy.APIError
	if stderrors.As(err, &apiErr) {
		appErr := errors.New(errors.ErrorCode(apiErr.ErrorCode()), apiErr.ErrorMessage(), status).
			WithCause(err).
			WithDetail("service", serviceName)
		if requestID != "" {
			appErr.WithDetail("aws_request_id", requestID)
		}
		return appErr
	}

	appErr := errors.ExternalServiceError(serviceName, err)
	appErr.HTTPStatus = status
	return appErr
}

// responseInfo returns the HTTP status and AWS request ID of the provider
// response behind err. The status defaults to 500.
func responseInfo(err error) (int, string) {
	var respErr *awshttp.ResponseError
	if !stderrors.As(err, &respErr) || respErr.ResponseError == nil {
		return http.StatusInternalServerError, ""
	}
	status := http.StatusInternalServerError
	if resp := respErr.Response; resp != nil && resp.Response != nil && resp.StatusCode != 0 {
		status = resp.StatusCode
	}
	return status, respErr.RequestID
}

// IsAccountExists reports whether err is the provider's "account already
// exists" rejection of a sign-up, matched by error code or by its exact
// message.
func IsAccountExists(err error) bool {
	if err == nil {
		return false
	}
	var apiErr smithy.APIError
	if stderrors.As(err, &apiErr) && apiErr.ErrorCode() == CodeUsernameExists {
		return true
	}
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr.Code == CodeUsernameExists || appErr.Message == AccountExistsMessage
	}
	return err.Error() == AccountExistsMessage
}

// ErrorCode returns the provider error code carried by err, or "".
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

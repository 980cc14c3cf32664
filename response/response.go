package response

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/kbukum/cognito-gateway/errors"
	"github.com/kbukum/cognito-gateway/logger"
)

// HeaderAllowOrigin is the only header set on responses.
const HeaderAllowOrigin = "Access-Control-Allow-Origin"

// fallbackBody is sent if an error body itself cannot be encoded.
const fallbackBody = `{"Error":"Unknown Exception","Reference":""}`

// StatusCoder is implemented by results that choose their own success status.
type StatusCoder interface {
	HTTPStatus() int
}

// Headers returns a fresh copy of the response headers.
func Headers() map[string]string {
	return map[string]string{HeaderAllowOrigin: "*"}
}

// Success encodes result as the body. The status is the explicit override,
// else result's HTTPStatus, else 200. An encoding failure is returned as a
// 500 *errors.AppError for the caller to shape with Error.
func Success(result any, status ...int) (events.APIGatewayProxyResponse, error) {
	code := http.StatusOK
	if sc, ok := result.(StatusCoder); ok && sc.HTTPStatus() != 0 {
		code = sc.HTTPStatus()
	}
	if len(status) > 0 && status[0] != 0 {
		code = status[0]
	}

	body, err := json.Marshal(result)
	if err != nil {
		return events.APIGatewayProxyResponse{}, errors.Internal(err).
			WithDetail(logger.FieldDetail, "encode response body")
	}
	return events.APIGatewayProxyResponse{
		StatusCode: code,
		Body:       string(body),
		Headers:    Headers(),
	}, nil
}

// Error logs err and shapes it into an error response. The status comes
// from the *errors.AppError in err's chain, else 500.
func Error(log *logger.Logger, err error, reference string) events.APIGatewayProxyResponse {
	appErr := errors.Wrap(err)
	if appErr == nil {
		appErr = errors.New(errors.ErrCodeInternal, "", http.StatusInternalServerError)
	}

	logError(log, appErr, reference)

	body, mErr := json.Marshal(appErr.ToResponse(reference))
	if mErr != nil {
		body = []byte(fallbackBody)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: appErr.Status(),
		Body:       string(body),
		Headers:    Headers(),
	}
}

func logError(log *logger.Logger, appErr *errors.AppError, reference string) {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	fields := map[string]interface{}{
		logger.FieldRequestID: reference,
		logger.FieldCode:      string(appErr.Code),
		logger.FieldStatus:    appErr.Status(),
	}
	if appErr.Cause != nil {
		fields[logger.FieldError] = appErr.Cause.Error()
	}
	for k, v := range appErr.Details {
		if _, taken := fields[k]; !taken {
			fields[k] = v
		}
	}

	if appErr.Status() < http.StatusInternalServerError {
		log.Warn(appErr.Message, fields)
		return
	}
	log.Error(appErr.Message, fields)
}

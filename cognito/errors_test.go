package cognito

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/kbukum/cognito-gateway/errors"
)

func TestTranslateError_ProviderError(t *testing.T) {
	sdkErr := sdkError("InitiateAuth", http.StatusBadRequest,
		&types.NotAuthorizedException{Message: aws.String("Incorrect username or password.")})

	err := translateError(sdkErr)
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Code != CodeNotAuthorized {
		t.Errorf("expected code %s, got %s", CodeNotAuthorized, appErr.Code)
	}
	if appErr.Message != "Incorrect username or password." {
		t.Errorf("unexpected message %q", appErr.Message)
	}
	if appErr.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", appErr.HTTPStatus)
	}
	if appErr.Details["aws_request_id"] != "aws-req-1" {
		t.Errorf("expected aws request id detail, got %v", appErr.Details["aws_request_id"])
	}
	if !stderrors.Is(err, sdkErr) {
		t.Error("expected SDK error to be kept as cause")
	}
}

func TestTranslateError_NoHTTPResponse(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode errors.ErrorCode
	}{
		{"api error without response", genericAPIError("InternalErrorException", "internal"), "InternalErrorException"},
		{"network error", fmt.Errorf("dial tcp: i/o timeout"), errors.ErrCodeExternalService},
		{"context canceled", context.Canceled, errors.ErrCodeExternalService},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			appErr, ok := errors.AsAppError(translateError(tc.err))
			if !ok {
				t.Fatal("expected *AppError")
			}
			if appErr.HTTPStatus != http.StatusInternalServerError {
				t.Errorf("expected 500, got %d", appErr.HTTPStatus)
			}
			if appErr.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, appErr.Code)
			}
			if appErr.Message == "" {
				t.Error("expected a message")
			}
		})
	}
}

func TestTranslateError_PassThrough(t *testing.T) {
	if translateError(nil) != nil {
		t.Error("nil should stay nil")
	}
	orig := errors.BadRequest("x")
	if translateError(orig) != error(orig) {
		t.Error("AppError should pass through unchanged")
	}
}

func TestIsAccountExists(t *testing.T) {
	exists := &types.UsernameExistsException{Message: aws.String(AccountExistsMessage)}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"raw sdk error", sdkError("SignUp", 400, exists), true},
		{"translated", translateError(sdkError("SignUp", 400, exists)), true},
		{"code only", errors.New(CodeUsernameExists, "User already exists", 400), true},
		{"message only", errors.New("SomeOtherException", AccountExistsMessage, 400), true},
		{"plain message", stderrors.New(AccountExistsMessage), true},
		{"other provider error", translateError(sdkError("SignUp", 400, &types.InvalidPasswordException{Message: aws.String("weak")})), false},
		{"unrelated", stderrors.New("boom"), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsAccountExists(tc.err); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	err := translateError(sdkError("AdminGetUser", 400, &types.UserNotFoundException{Message: aws.String("User does not exist.")}))
	if got := ErrorCode(err); got != CodeUserNotFound {
		t.Errorf("expected %s, got %q", CodeUserNotFound, got)
	}
	if got := ErrorCode(stderrors.New("x")); got != "" {
		t.Errorf("expected empty code, got %q", got)
	}
}

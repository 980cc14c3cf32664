package cognito

import (
	"context"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

// fakeAPI records the last input of each call and returns the configured
// output or error.
type fakeAPI struct {
	calls []string

	signUpIn  *cip.SignUpInput
	signUpOut *cip.SignUpOutput
	signUpErr error

	getUserIn  *cip.AdminGetUserInput
	getUserOut *cip.AdminGetUserOutput
	getUserErr error

	authIn  *cip.InitiateAuthInput
	authOut *cip.InitiateAuthOutput
	authErr error

	forgotIn  *cip.ForgotPasswordInput
	forgotOut *cip.ForgotPasswordOutput
	forgotErr error

	confirmIn  *cip.ConfirmForgotPasswordInput
	confirmErr error

	changeIn  *cip.ChangePasswordInput
	changeErr error

	resendIn  *cip.ResendConfirmationCodeInput
	resendOut *cip.ResendConfirmationCodeOutput
	resendErr error
}

func (f *fakeAPI) SignUp(_ context.Context, in *cip.SignUpInput, _ ...func(*cip.Options)) (*cip.SignUpOutput, error) {
	f.calls = append(f.calls, "SignUp")
	f.signUpIn = in
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	if f.signUpOut == nil {
		return &cip.SignUpOutput{}, nil
	}
	return f.signUpOut, nil
}

func (f *fakeAPI) AdminGetUser(_ context.Context, in *cip.AdminGetUserInput, _ ...func(*cip.Options)) (*cip.AdminGetUserOutput, error) {
	f.calls = append(f.calls, "AdminGetUser")
	f.getUserIn = in
	if f.getUserErr != nil {
		return nil, f.getUserErr
	}
	if f.getUserOut == nil {
		return &cip.AdminGetUserOutput{}, nil
	}
	return f.getUserOut, nil
}

func (f *fakeAPI) InitiateAuth(_ context.Context, in *cip.InitiateAuthInput, _ ...func(*cip.Options)) (*cip.InitiateAuthOutput, error) {
	f.calls = append(f.calls, "InitiateAuth")
	f.authIn = in
	if f.authErr != nil {
		return nil, f.authErr
	}
	if f.authOut == nil {
		return &cip.InitiateAuthOutput{}, nil
	}
	return f.authOut, nil
}

func (f *fakeAPI) ForgotPassword(_ context.Context, in *cip.ForgotPasswordInput, _ ...func(*cip.Options)) (*cip.ForgotPasswordOutput, error) {
	f.calls = append(f.calls, "ForgotPassword")
	f.forgotIn = in
	if f.forgotErr != nil {
		return nil, f.forgotErr
	}
	if f.forgotOut == nil {
		return &cip.ForgotPasswordOutput{}, nil
	}
	return f.forgotOut, nil
}

func (f *fakeAPI) ConfirmForgotPassword(_ context.Context, in *cip.ConfirmForgotPasswordInput, _ ...func(*cip.Options)) (*cip.ConfirmForgotPasswordOutput, error) {
	f.calls = append(f.calls, "ConfirmForgotPassword")
	f.confirmIn = in
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	return &cip.ConfirmForgotPasswordOutput{}, nil
}

func (f *fakeAPI) ChangePassword(_ context.Context, in *cip.ChangePasswordInput, _ ...func(*cip.Options)) (*cip.ChangePasswordOutput, error) {
	f.calls = append(f.calls, "ChangePassword")
	f.changeIn = in
	if f.changeErr != nil {
		return nil, f.changeErr
	}
	return &cip.ChangePasswordOutput{}, nil
}

func (f *fakeAPI) ResendConfirmationCode(_ context.Context, in *cip.ResendConfirmationCodeInput, _ ...func(*cip.Options)) (*cip.ResendConfirmationCodeOutput, error) {
	f.calls = append(f.calls, "ResendConfirmationCode")
	f.resendIn = in
	if f.resendErr != nil {
		return nil, f.resendErr
	}
	if f.resendOut == nil {
		return &cip.ResendConfirmationCodeOutput{}, nil
	}
	return f.resendOut, nil
}

// sdkError builds an error shaped like the ones the SDK returns for a
// rejected request.
func sdkError(operation string, status int, apiErr error) error {
	return &smithy.OperationError{
		ServiceID:     "Cognito Identity Provider",
		OperationName: operation,
		Err: &awshttp.ResponseError{
			ResponseError: &smithyhttp.ResponseError{
				Response: &smithyhttp.Response{Response: &http.Response{StatusCode: status}},
				Err:      apiErr,
			},
			RequestID: "aws-req-1",
		},
	}
}

func genericAPIError(code, message string) error {
	return &smithy.GenericAPIError{Code: code, Message: message, Fault: smithy.FaultClient}
}

func testConfig() Config {
	return Config{
		Region:       "eu-west-1",
		UserPoolID:   "eu-west-1_AbC123",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	}
}


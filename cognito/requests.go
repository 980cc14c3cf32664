package cognito

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// Auth parameter keys of InitiateAuth.
const (
	paramUsername     = "USERNAME"
	paramPassword     = "PASSWORD"
	paramSecretHash   = "SECRET_HASH"
	paramRefreshToken = "REFRESH_TOKEN"
)

const (
	attrPreferredUsername = "preferred_username"
	attrEmail             = "email"
)

type signUpInput struct {
	Username string
	Email    string
	Password string
}

type loginInput struct {
	Username string
	Password string
}

type refreshInput struct {
	Token   string
	Subject string
}

type resetPasswordInput struct {
	Username    string
	NewPassword string
	Code        string
}

type changePasswordInput struct {
	AccessToken string
	OldPassword string
	NewPassword string
}

func (c *Client) signUpRequest(_ context.Context, in signUpInput) (*cip.SignUpInput, error) {
	return &cip.SignUpInput{
		ClientId:   aws.String(c.cfg.ClientID),
		Username:   aws.String(in.Email),
		Password:   aws.String(in.Password),
		SecretHash: aws.String(c.cfg.secretHash(in.Email)),
		UserAttributes: []types.AttributeType{
			{Name: aws.String(attrPreferredUsername), Value: aws.String(in.Username)},
		},
		ValidationData: []types.AttributeType{
			{Name: aws.String(attrEmail), Value: aws.String(in.Email)},
		},
	}, nil
}

func (c *Client) getUserRequest(_ context.Context, username string) (*cip.AdminGetUserInput, error) {
	return &cip.AdminGetUserInput{
		UserPoolId: aws.String(c.cfg.UserPoolID),
		Username:   aws.String(username),
	}, nil
}

func (c *Client) loginRequest(_ context.Context, in loginInput) (*cip.InitiateAuthInput, error) {
	return &cip.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(c.cfg.ClientID),
		AuthParameters: map[string]string{
			paramUsername:   in.Username,
			paramPassword:   in.Password,
			paramSecretHash: c.cfg.secretHash(in.Username),
		},
	}, nil
}

func (c *Client) refreshRequest(_ context.Context, in refreshInput) (*cip.InitiateAuthInput, error) {
	return &cip.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeRefreshTokenAuth,
		ClientId: aws.String(c.cfg.ClientID),
		AuthParameters: map[string]string{
			paramRefreshToken: in.Token,
			paramSecretHash:   c.cfg.secretHash(in.Subject),
		},
		ClientMetadata: map[string]string{},
	}, nil
}

func (c *Client) forgotPasswordRequest(_ context.Context, username string) (*cip.ForgotPasswordInput, error) {
	return &cip.ForgotPasswordInput{
		ClientId:   aws.String(c.cfg.ClientID),
		Username:   aws.String(username),
		SecretHash: aws.String(c.cfg.secretHash(username)),
	}, nil
}

func (c *Client) resetPasswordRequest(_ context.Context, in resetPasswordInput) (*cip.ConfirmForgotPasswordInput, error) {
	return &cip.ConfirmForgotPasswordInput{
		ClientId:         aws.String(c.cfg.ClientID),
		ConfirmationCode: aws.String(in.Code),
		Password:         aws.String(in.NewPassword),
		Username:         aws.String(in.Username),
		SecretHash:       aws.String(c.cfg.secretHash(in.Username)),
	}, nil
}

func changePasswordRequest(_ context.Context, in changePasswordInput) (*cip.ChangePasswordInput, error) {
	return &cip.ChangePasswordInput{
		AccessToken:      aws.String(in.AccessToken),
		PreviousPassword: aws.String(in.OldPassword),
		ProposedPassword: aws.String(in.NewPassword),
	}, nil
}

func (c *Client) resendCodeRequest(_ context.Context, username string) (*cip.ResendConfirmationCodeInput, error) {
	return &cip.ResendConfirmationCodeInput{
		ClientId:   aws.String(c.cfg.ClientID),
		Username:   aws.String(username),
		SecretHash: aws.String(c.cfg.secretHash(username)),
	}, nil
}

func signUpResult(out *cip.SignUpOutput) (*SignUpResult, error) {
	return &SignUpResult{
		UserConfirmed:       out.UserConfirmed,
		UserSub:             aws.ToString(out.UserSub),
		CodeDeliveryDetails: toCodeDeliveryDetails(out.CodeDeliveryDetails),
	}, nil
}

func userResult(out *cip.AdminGetUserOutput) (*UserResult, error) {
	return &UserResult{
		Username:             aws.ToString(out.Username),
		UserAttributes:       toAttributes(out.UserAttributes),
		UserCreateDate:       out.UserCreateDate,
		UserLastModifiedDate: out.UserLastModifiedDate,
		Enabled:              out.Enabled,
		UserStatus:           string(out.UserStatus),
		PreferredMfaSetting:  aws.ToString(out.PreferredMfaSetting),
		UserMFASettingList:   out.UserMFASettingList,
	}, nil
}

func authResult(out *cip.InitiateAuthOutput) (*AuthResult, error) {
	return &AuthResult{
		AuthenticationResult: toAuthenticationResult(out.AuthenticationResult),
		ChallengeName:        string(out.ChallengeName),
		ChallengeParameters:  out.ChallengeParameters,
		Session:              aws.ToString(out.Session),
	}, nil
}

func forgotPasswordResult(out *cip.ForgotPasswordOutput) (*CodeDeliveryResult, error) {
	return &CodeDeliveryResult{CodeDeliveryDetails: toCodeDeliveryDetails(out.CodeDeliveryDetails)}, nil
}

func resendCodeResult(out *cip.ResendConfirmationCodeOutput) (*CodeDeliveryResult, error) {
	return &CodeDeliveryResult{CodeDeliveryDetails: toCodeDeliveryDetails(out.CodeDeliveryDetails)}, nil
}

func emptyResult[BO any](BO) (*EmptyResult, error) {
	return &EmptyResult{}, nil
}

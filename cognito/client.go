package cognito

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"

	"github.com/kbukum/cognito-gateway/logger"
	"github.com/kbukum/cognito-gateway/observability"
	"github.com/kbukum/cognito-gateway/provider"
)

// API is the subset of the Cognito Identity Provider client used here.
// *cognitoidentityprovider.Client satisfies it.
type API interface {
	SignUp(ctx context.Context, in *cip.SignUpInput, optFns ...func(*cip.Options)) (*cip.SignUpOutput, error)
	AdminGetUser(ctx context.Context, in *cip.AdminGetUserInput, optFns ...func(*cip.Options)) (*cip.AdminGetUserOutput, error)
	InitiateAuth(ctx context.Context, in *cip.InitiateAuthInput, optFns ...func(*cip.Options)) (*cip.InitiateAuthOutput, error)
	ForgotPassword(ctx context.Context, in *cip.ForgotPasswordInput, optFns ...func(*cip.Options)) (*cip.ForgotPasswordOutput, error)
	ConfirmForgotPassword(ctx context.Context, in *cip.ConfirmForgotPasswordInput, optFns ...func(*cip.Options)) (*cip.ConfirmForgotPasswordOutput, error)
	ChangePassword(ctx context.Context, in *cip.ChangePasswordInput, optFns ...func(*cip.Options)) (*cip.ChangePasswordOutput, error)
	ResendConfirmationCode(ctx context.Context, in *cip.ResendConfirmationCodeInput, optFns ...func(*cip.Options)) (*cip.ResendConfirmationCodeOutput, error)
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for provider call logs.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithMetrics records provider call metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// Client performs Cognito user pool operations. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	cfg     Config
	log     *logger.Logger
	metrics *observability.Metrics

	signUp         provider.RequestResponse[signUpInput, *SignUpResult]
	getUser        provider.RequestResponse[string, *UserResult]
	login          provider.RequestResponse[loginInput, *AuthResult]
	refresh        provider.RequestResponse[refreshInput, *AuthResult]
	forgotPassword provider.RequestResponse[string, *CodeDeliveryResult]
	resetPassword  provider.RequestResponse[resetPasswordInput, *EmptyResult]
	changePassword provider.RequestResponse[changePasswordInput, *EmptyResult]
	resendCode     provider.RequestResponse[string, *CodeDeliveryResult]
}

// New builds a Client backed by the AWS SDK. cfg is defaulted and
// validated first.
func New(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cognito: invalid config: %w", err)
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("cognito: load aws config: %w", err)
	}

	api := cip.NewFromConfig(awsCfg, func(o *cip.Options) {
		// One request per operation.
		o.RetryMaxAttempts = 1
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewWithAPI(api, cfg, opts...), nil
}

// NewWithAPI builds a Client on top of any API implementation. cfg is used
// as given.
func NewWithAPI(api API, cfg Config, opts ...Option) *Client {
	c := &Client{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Get(serviceName)
	}

	c.signUp = operation(c, "sign_up", sdkCall(api.SignUp), c.signUpRequest, signUpResult)
	c.getUser = operation(c, "get_user", sdkCall(api.AdminGetUser), c.getUserRequest, userResult)
	c.login = operation(c, "login", sdkCall(api.InitiateAuth), c.loginRequest, authResult)
	c.refresh = operation(c, "refresh", sdkCall(api.InitiateAuth), c.refreshRequest, authResult)
	c.forgotPassword = operation(c, "forgot_password", sdkCall(api.ForgotPassword), c.forgotPasswordRequest, forgotPasswordResult)
	c.resetPassword = operation(c, "reset_password", sdkCall(api.ConfirmForgotPassword), c.resetPasswordRequest, emptyResult[*cip.ConfirmForgotPasswordOutput])
	c.changePassword = operation(c, "change_password", sdkCall(api.ChangePassword), changePasswordRequest, emptyResult[*cip.ChangePasswordOutput])
	c.resendCode = operation(c, "resend_code", sdkCall(api.ResendConfirmationCode), c.resendCodeRequest, resendCodeResult)
	return c
}

// sdkCall drops the variadic options of an SDK method so it fits
// provider.Func.
func sdkCall[BI, BO any](fn func(context.Context, BI, ...func(*cip.Options)) (BO, error)) func(context.Context, BI) (BO, error) {
	return func(ctx context.Context, in BI) (BO, error) {
		return fn(ctx, in)
	}
}

// operation lifts one SDK call into a provider with error translation,
// request/response mapping and the logging, tracing and metrics chain.
func operation[I, O, BI, BO any](
	c *Client,
	name string,
	call func(context.Context, BI) (BO, error),
	mapIn func(context.Context, I) (BI, error),
	mapOut func(BO) (O, error),
) provider.RequestResponse[I, O] {
	raw := provider.Func(name, func(ctx context.Context, in BI) (BO, error) {
		out, err := call(ctx, in)
		if err != nil {
			var zero BO
			return zero, translateError(err)
		}
		return out, nil
	})
	return provider.Chain(
		provider.WithLogging[I, O](c.log),
		provider.WithTracing[I, O](serviceName),
		provider.WithMetrics[I, O](c.metrics),
	)(provider.Adapt(raw, name, mapIn, mapOut))
}

// SignUp registers a user under their email address. username is stored as
// the preferred_username attribute.
func (c *Client) SignUp(ctx context.Context, username, email, password string) (*SignUpResult, error) {
	return c.signUp.Execute(ctx, signUpInput{Username: username, Email: email, Password: password})
}

// GetUser returns the user record for username.
func (c *Client) GetUser(ctx context.Context, username string) (*UserResult, error) {
	return c.getUser.Execute(ctx, username)
}

// Login runs the USER_PASSWORD_AUTH flow.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	return c.login.Execute(ctx, loginInput{Username: username, Password: password})
}

// RefreshOption configures a Refresh call.
type RefreshOption func(*refreshInput)

// WithSubject sets the username the SECRET_HASH of a refresh is computed
// over. Without it the hash covers the empty string.
func WithSubject(username string) RefreshOption {
	return func(in *refreshInput) { in.Subject = username }
}

// Refresh runs the REFRESH_TOKEN_AUTH flow with token as the refresh token.
func (c *Client) Refresh(ctx context.Context, token string, opts ...RefreshOption) (*AuthResult, error) {
	in := refreshInput{Token: token}
	for _, opt := range opts {
		opt(&in)
	}
	return c.refresh.Execute(ctx, in)
}

// ForgotPassword starts a password reset and sends a code to the user.
func (c *Client) ForgotPassword(ctx context.Context, username string) (*CodeDeliveryResult, error) {
	return c.forgotPassword.Execute(ctx, username)
}

// ResetPassword completes a password reset with the emailed code.
func (c *Client) ResetPassword(ctx context.Context, username, newPassword, code string) (*EmptyResult, error) {
	return c.resetPassword.Execute(ctx, resetPasswordInput{Username: username, NewPassword: newPassword, Code: code})
}

// ChangePassword changes the password of the user that owns accessToken.
func (c *Client) ChangePassword(ctx context.Context, accessToken, oldPassword, newPassword string) (*EmptyResult, error) {
	return c.changePassword.Execute(ctx, changePasswordInput{
		AccessToken: accessToken,
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
}

// ResendCode resends the sign-up confirmation code.
func (c *Client) ResendCode(ctx context.Context, username string) (*CodeDeliveryResult, error) {
	return c.resendCode.Execute(ctx, username)
}

// CheckHealth reports the configured user pool. It makes no provider
// request.
func (c *Client) CheckHealth(_ context.Context) observability.Health {
	h := observability.Health{
		Name:   serviceName,
		Status: observability.HealthStatusUp,
		Details: map[string]string{
			"region":       c.cfg.Region,
			"user_pool_id": c.cfg.UserPoolID,
		},
	}
	if err := c.cfg.Validate(); err != nil {
		h.Status = observability.HealthStatusDown
		h.Message = err.Error()
	}
	return h
}

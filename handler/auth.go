package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/events"

	"github.com/kbukum/cognito-gateway/cognito"
	"github.com/kbukum/cognito-gateway/logger"
)

// SignUp registers a user from the username, password and email query
// parameters. If the email is already registered it answers with the
// existing user record instead.
func (h *Handlers) SignUp(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return h.invoke(ctx, req, NameSignUp, func(ctx context.Context, log *logger.Logger) (any, error) {
		var p signUpParams
		if err := fromQuery(req, &p); err != nil {
			return nil, err
		}

		res, err := h.auth.SignUp(ctx, p.Username, p.Email, p.Password)
		if err == nil {
			return res, nil
		}
		if !cognito.IsAccountExists(err) {
			return nil, err
		}

		log.Warn("account already exists, returning existing user", map[string]interface{}{
			logger.FieldError: err.Error(),
			logger.FieldCode:  cognito.ErrorCode(err),
		})
		user, err := h.auth.GetUser(ctx, p.Email)
		if err != nil {
			return nil, err
		}
		return user, nil
	})
}

// Login authenticates with the username and password query parameters.
func (h *Handlers) Login(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return h.invoke(ctx, req, NameLogin, func(ctx context.Context, _ *logger.Logger) (any, error) {
		var p loginParams
		if err := fromQuery(req, &p); err != nil {
			return nil, err
		}
		res, err := h.auth.Login(ctx, p.Username, p.Password)
		if err != nil {
			return nil, err
		}
		return res, nil
	})
}

// ForgotPassword starts a password reset for the username query parameter.
func (h *Handlers) ForgotPassword(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return h.invoke(ctx, req, NameForgotPassword, func(ctx context.Context, _ *logger.Logger) (any, error) {
		var p forgotParams
		if err := fromQuery(req, &p); err != nil {
			return nil, err
		}
		res, err := h.auth.ForgotPassword(ctx, p.Username)
		if err != nil {
			return nil, err
		}
		return res, nil
	})
}

// ChangePassword changes a password from the accessToken, oldPassword and
// newPassword body fields.
func (h *Handlers) ChangePassword(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return h.invoke(ctx, req, NameChangePassword, func(ctx context.Context, log *logger.Logger) (any, error) {
		var p changePasswordParams
		if err := fromBody(req, &p); err != nil {
			return nil, err
		}
		if sub := tokenSubject(p.AccessToken); sub != "" {
			log = log.WithFields(map[string]interface{}{logger.FieldSubject: sub})
		}
		log.Debug("changing password")

		res, err := h.auth.ChangePassword(ctx, p.AccessToken, p.OldPassword, p.NewPassword)
		if err != nil {
			return nil, err
		}
		return res, nil
	})
}

// Refresh issues new tokens for the token body field. An optional username
// field is used as the SECRET_HASH subject.
func (h *Handlers) Refresh(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return h.invoke(ctx, req, NameRefresh, func(ctx context.Context, _ *logger.Logger) (any, error) {
		var p refreshParams
		if err := fromBody(req, &p); err != nil {
			return nil, err
		}

		var opts []cognito.RefreshOption
		if p.Username != "" {
			opts = append(opts, cognito.WithSubject(p.Username))
		}
		res, err := h.auth.Refresh(ctx, p.Token, opts...)
		if err != nil {
			return nil, err
		}
		return res, nil
	})
}

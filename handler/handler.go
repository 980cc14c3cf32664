package handler

import (
	"context"
	"sort"

	"github.com/aws/aws-lambda-go/events"

	"github.com/kbukum/cognito-gateway/cognito"
	"github.com/kbukum/cognito-gateway/logger"
	"github.com/kbukum/cognito-gateway/observability"
	"github.com/kbukum/cognito-gateway/response"
)

// DefaultServiceName names handler spans when no service name is set.
const DefaultServiceName = "cognito-gateway"

// Handler names, also used as operation names in logs, spans and metrics.
const (
	NameSignUp         = "signup"
	NameLogin          = "login"
	NameForgotPassword = "forgot-password"
	NameChangePassword = "change-password"
	NameRefresh        = "refresh"
)

// Func is the signature of an API Gateway proxy handler.
type Func func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Authenticator is the identity provider surface the handlers use.
// *cognito.Client satisfies it.
type Authenticator interface {
	SignUp(ctx context.Context, username, email, password string) (*cognito.SignUpResult, error)
	GetUser(ctx context.Context, username string) (*cognito.UserResult, error)
	Login(ctx context.Context, username, password string) (*cognito.AuthResult, error)
	ForgotPassword(ctx context.Context, username string) (*cognito.CodeDeliveryResult, error)
	ChangePassword(ctx context.Context, accessToken, oldPassword, newPassword string) (*cognito.EmptyResult, error)
	Refresh(ctx context.Context, token string, opts ...cognito.RefreshOption) (*cognito.AuthResult, error)
}

// Option configures Handlers.
type Option func(*Handlers)

// WithLogger sets the logger handlers log through.
func WithLogger(l *logger.Logger) Option {
	return func(h *Handlers) { h.log = l }
}

// WithMetrics records request metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(h *Handlers) { h.metrics = m }
}

// WithServiceName sets the service name recorded on handler spans.
func WithServiceName(name string) Option {
	return func(h *Handlers) { h.service = name }
}

// Handlers holds the auth handlers. It is immutable after New and safe for
// concurrent use.
type Handlers struct {
	auth    Authenticator
	log     *logger.Logger
	metrics *observability.Metrics
	service string
}

// New creates Handlers backed by auth.
func New(auth Authenticator, opts ...Option) *Handlers {
	h := &Handlers{auth: auth, service: DefaultServiceName}
	for _, opt := range opts {
		opt(h)
	}
	if h.log == nil {
		h.log = logger.Get("handler")
	}
	return h
}

// All returns every handler keyed by name.
func (h *Handlers) All() map[string]Func {
	return map[string]Func{
		NameSignUp:         h.SignUp,
		NameLogin:          h.Login,
		NameForgotPassword: h.ForgotPassword,
		NameChangePassword: h.ChangePassword,
		NameRefresh:        h.Refresh,
	}
}

// Lookup returns the handler registered under name.
func (h *Handlers) Lookup(name string) (Func, bool) {
	fn, ok := h.All()[name]
	return fn, ok
}

// Names returns the handler names in sorted order.
func Names() []string {
	names := []string{NameSignUp, NameLogin, NameForgotPassword, NameChangePassword, NameRefresh}
	sort.Strings(names)
	return names
}

// invoke runs one handler body inside an operation span and shapes its
// outcome. The returned error is always nil.
func (h *Handlers) invoke(
	ctx context.Context,
	req events.APIGatewayProxyRequest,
	name string,
	body func(ctx context.Context, log *logger.Logger) (any, error),
) (events.APIGatewayProxyResponse, error) {
	ref := Reference(ctx, req)
	ctx = logger.ContextWithRequestID(ctx, ref)
	ctx, op := observability.StartOperation(ctx, h.service, name, ref, h.metrics)

	log := h.log.WithContext(ctx).WithFields(map[string]interface{}{
		logger.FieldOperation: name,
	})

	var resp events.APIGatewayProxyResponse
	result, err := body(ctx, log)
	if err == nil {
		resp, err = response.Success(result)
	}
	if err != nil {
		resp = response.Error(log, err, ref)
	}

	op.End(ctx, resp.StatusCode, err)
	return resp, nil
}

package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/kbukum/cognito-gateway/cognito"
	"github.com/kbukum/cognito-gateway/config"
	"github.com/kbukum/cognito-gateway/handler"
	"github.com/kbukum/cognito-gateway/logger"
)

type noFiles struct{}

func (noFiles) Exists(string) bool   { return false }
func (noFiles) LoadEnv(string) error { return nil }

// stubAPI answers every call with an empty success.
type stubAPI struct{}

func (stubAPI) SignUp(context.Context, *cip.SignUpInput, ...func(*cip.Options)) (*cip.SignUpOutput, error) {
	return &cip.SignUpOutput{UserSub: aws.String("sub-1")}, nil
}

func (stubAPI) AdminGetUser(context.Context, *cip.AdminGetUserInput, ...func(*cip.Options)) (*cip.AdminGetUserOutput, error) {
	return &cip.AdminGetUserOutput{}, nil
}

func (stubAPI) InitiateAuth(context.Context, *cip.InitiateAuthInput, ...func(*cip.Options)) (*cip.InitiateAuthOutput, error) {
	return &cip.InitiateAuthOutput{AuthenticationResult: &types.AuthenticationResultType{AccessToken: aws.String("at")}}, nil
}

func (stubAPI) ForgotPassword(context.Context, *cip.ForgotPasswordInput, ...func(*cip.Options)) (*cip.ForgotPasswordOutput, error) {
	return &cip.ForgotPasswordOutput{}, nil
}

func (stubAPI) ConfirmForgotPassword(context.Context, *cip.ConfirmForgotPasswordInput, ...func(*cip.Options)) (*cip.ConfirmForgotPasswordOutput, error) {
	return &cip.ConfirmForgotPasswordOutput{}, nil
}

func (stubAPI) ChangePassword(context.Context, *cip.ChangePasswordInput, ...func(*cip.Options)) (*cip.ChangePasswordOutput, error) {
	return &cip.ChangePasswordOutput{}, nil
}

func (stubAPI) ResendConfirmationCode(context.Context, *cip.ResendConfirmationCodeInput, ...func(*cip.Options)) (*cip.ResendConfirmationCodeOutput, error) {
	return &cip.ResendConfirmationCodeOutput{}, nil
}

func newTestConfig() *Config {
	return &Config{
		ServiceConfig: config.ServiceConfig{Name: "login", Environment: "development"},
		Cognito: cognito.Config{
			UserPoolID:   "eu-west-1_AbC123",
			ClientID:     "client-id",
			ClientSecret: "client-secret",
		},
	}
}

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	log := logger.New(&logger.Config{Level: "error", Format: "json", Writer: &bytes.Buffer{}}, "test")
	opts = append([]Option{WithLogger(log), WithAPI(stubAPI{})}, opts...)
	app, err := NewApp(context.Background(), newTestConfig(), opts...)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	return app
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := newTestConfig()
	cfg.ApplyDefaults()

	if cfg.Cognito.Region != "eu-west-1" {
		t.Errorf("expected region from pool id, got %q", cfg.Cognito.Region)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Version == "" {
		t.Error("expected version default")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level in development, got %q", cfg.Logging.Level)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := newTestConfig()
	cfg.Cognito.ClientSecret = ""
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing client secret")
	}

	cfg = newTestConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.SampleRate = 2
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for sample rate above 1")
	}
}

func TestConfig_ApplyLegacyEnv(t *testing.T) {
	env := map[string]string{
		"USER_POOL_ID":  "us-east-2_Legacy1",
		"CLIENT_ID":     "legacy-client",
		"CLIENT_SECRET": "legacy-secret",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := &Config{}
	cfg.Cognito.ClientID = "explicit-client"
	cfg.applyLegacyEnv(lookup)

	if cfg.Cognito.UserPoolID != "us-east-2_Legacy1" {
		t.Errorf("unexpected pool id %q", cfg.Cognito.UserPoolID)
	}
	if cfg.Cognito.ClientID != "explicit-client" {
		t.Errorf("explicit value should win, got %q", cfg.Cognito.ClientID)
	}
	if cfg.Cognito.ClientSecret != "legacy-secret" {
		t.Errorf("unexpected secret %q", cfg.Cognito.ClientSecret)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("COGNITO_USER_POOL_ID", "ap-south-1_Env123")
	t.Setenv("COGNITO_CLIENT_ID", "env-client")
	t.Setenv("COGNITO_CLIENT_SECRET", "env-secret")

	cfg, err := LoadConfig("refresh", config.WithFileSystem(noFiles{}))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "refresh" {
		t.Errorf("expected service name default, got %q", cfg.Name)
	}
	if cfg.Cognito.ClientID != "env-client" || cfg.Cognito.Region != "ap-south-1" {
		t.Errorf("unexpected cognito config %+v", cfg.Cognito)
	}
}

func TestLoad_UnrelatedEnvDoesNotShadowConfig(t *testing.T) {
	t.Setenv("COGNITO_USER_POOL_ID", "eu-west-1_Env456")
	t.Setenv("COGNITO_CLIENT_ID", "env-client")
	t.Setenv("COGNITO_CLIENT_SECRET", "env-secret")
	t.Setenv("NAME_SUFFIX", "blue")
	t.Setenv("DEBUG_LOGGING", "1")
	t.Setenv("VERSION_TAG", "v2")
	t.Setenv("ENVIRONMENT_TYPE", "lambda")

	log := logger.New(&logger.Config{Level: "error", Format: "json", Writer: &bytes.Buffer{}}, "test")
	app, err := Load(context.Background(), "login",
		WithLoaderOptions(config.WithFileSystem(noFiles{})),
		WithLogger(log),
		WithAPI(stubAPI{}),
	)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if app.Name != "login" {
		t.Errorf("expected name login, got %q", app.Name)
	}
	if app.Cfg.Cognito.ClientID != "env-client" {
		t.Errorf("unexpected client id %q", app.Cfg.Cognito.ClientID)
	}
}

func TestNewApp(t *testing.T) {
	app := newTestApp(t)
	if app.Name != "login" {
		t.Errorf("expected name login, got %q", app.Name)
	}
	if app.Client == nil || app.Handlers == nil || app.Telemetry == nil {
		t.Fatal("expected client, handlers and telemetry")
	}
	if app.Telemetry.Enabled() {
		t.Error("telemetry should be disabled by default")
	}
}

func TestNewApp_InvalidConfig(t *testing.T) {
	cfg := newTestConfig()
	cfg.Cognito.UserPoolID = "bad"
	if _, err := NewApp(context.Background(), cfg, WithAPI(stubAPI{})); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestApp_LambdaHandler(t *testing.T) {
	app := newTestApp(t)

	fn, err := app.LambdaHandler(handler.NameLogin)
	if err != nil {
		t.Fatalf("LambdaHandler failed: %v", err)
	}
	req := events.APIGatewayProxyRequest{QueryStringParameters: map[string]string{"username": "alice", "password": "p"}}
	resp, err := fn(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", resp.StatusCode, resp.Body)
	}

	if _, err := app.LambdaHandler("reset-password"); err == nil {
		t.Error("expected error for unknown handler")
	}
}

func TestApp_NewServer(t *testing.T) {
	app := newTestApp(t)
	srv := app.NewServer()

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
	if rr.Code != http.StatusOK {
		t.Errorf("expected healthy service, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestApp_Shutdown(t *testing.T) {
	app := newTestApp(t, WithGracefulTimeout(2*time.Second))

	var order []string
	var remaining time.Duration
	app.OnStop(
		func(ctx context.Context) error {
			order = append(order, "first")
			if deadline, ok := ctx.Deadline(); ok {
				remaining = time.Until(deadline)
			}
			return nil
		},
		func(context.Context) error { order = append(order, "second"); return nil },
	)
	if err := app.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("unexpected hook order %v", order)
	}
	if remaining <= 0 || remaining > 2*time.Second {
		t.Errorf("expected hook deadline within the graceful timeout, got %v", remaining)
	}
}

func TestApp_ShutdownHookError(t *testing.T) {
	app := newTestApp(t)
	boom := errors.New("boom")

	called := false
	app.OnStop(
		func(context.Context) error { return boom },
		func(context.Context) error { called = true; return nil },
	)
	if err := app.Shutdown(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected hook error, got %v", err)
	}
	if called {
		t.Error("hooks after a failure should not run")
	}
}

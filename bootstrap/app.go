package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/kbukum/cognito-gateway/cognito"
	"github.com/kbukum/cognito-gateway/handler"
	"github.com/kbukum/cognito-gateway/logger"
	"github.com/kbukum/cognito-gateway/observability"
	"github.com/kbukum/cognito-gateway/server"
	"github.com/kbukum/cognito-gateway/version"
)

// App holds everything a binary needs to serve the auth handlers. It is
// built once per process (per Lambda cold start).
type App struct {
	Name      string
	Cfg       *Config
	Logger    *logger.Logger
	Telemetry *observability.Telemetry
	Client    *cognito.Client
	Handlers  *handler.Handlers

	gracefulTimeout time.Duration
	onStop          []Hook
}

// Load reads the configuration of serviceName and builds the App.
func Load(ctx context.Context, serviceName string, opts ...Option) (*App, error) {
	cfg, err := LoadConfig(serviceName, resolveOptions(opts).loader...)
	if err != nil {
		return nil, err
	}
	return NewApp(ctx, cfg, opts...)
}

// NewApp builds the App from cfg: logger, telemetry, Cognito client and
// handlers. cfg is defaulted and validated first.
func NewApp(ctx context.Context, cfg *Config, opts ...Option) (*App, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	o := resolveOptions(opts)
	app := &App{
		Name:            cfg.Name,
		Cfg:             cfg,
		gracefulTimeout: 15 * time.Second,
	}
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}

	if o.logger != nil {
		logger.SetGlobalLogger(o.logger)
	} else {
		logger.Init(cfg.Logging, cfg.Name)
	}
	logger.RegisterDefaults("cognito", "handler", "server")
	app.Logger = logger.GetGlobalLogger()

	tel, err := observability.Setup(ctx, cfg.Telemetry, observability.ServiceInfo{
		Name:        cfg.Name,
		Version:     cfg.Version,
		Environment: cfg.Environment,
	})
	if err != nil {
		return nil, fmt.Errorf("telemetry setup: %w", err)
	}
	app.Telemetry = tel

	clientOpts := []cognito.Option{
		cognito.WithLogger(logger.Get("cognito")),
		cognito.WithMetrics(tel.Metrics),
	}
	if o.api != nil {
		app.Client = cognito.NewWithAPI(o.api, cfg.Cognito, clientOpts...)
	} else {
		app.Client, err = cognito.New(ctx, cfg.Cognito, clientOpts...)
		if err != nil {
			_ = tel.Shutdown(ctx)
			return nil, err
		}
	}

	app.Handlers = handler.New(app.Client,
		handler.WithLogger(logger.Get("handler")),
		handler.WithMetrics(tel.Metrics),
		handler.WithServiceName(cfg.Name),
	)

	fields := version.GetVersionInfo().Fields()
	fields["name"] = cfg.Name
	fields["environment"] = cfg.Environment
	fields["region"] = cfg.Cognito.Region
	fields["telemetry"] = tel.Enabled()
	app.Logger.Info("Application initialized", fields)
	return app, nil
}

// LambdaHandler returns the named handler wrapped so telemetry is flushed
// after every invocation.
func (a *App) LambdaHandler(name string) (handler.Func, error) {
	fn, ok := a.Handlers.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown handler %q (known: %v)", name, handler.Names())
	}
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		resp, err := fn(ctx, req)
		if flushErr := a.Telemetry.ForceFlush(ctx); flushErr != nil {
			a.Logger.Warn("Telemetry flush failed", map[string]interface{}{
				logger.FieldError: flushErr.Error(),
			})
		}
		return resp, err
	}, nil
}

// RunLambda serves the named handler on the Lambda runtime. It does not
// return unless the handler name is unknown.
func (a *App) RunLambda(name string) error {
	fn, err := a.LambdaHandler(name)
	if err != nil {
		return err
	}
	a.Logger.Info("Starting Lambda handler", map[string]interface{}{
		logger.FieldOperation: name,
	})
	lambda.StartWithOptions(fn, lambda.WithEnableSIGTERM(func() {
		_ = a.Shutdown(context.Background())
	}))
	return nil
}

// NewServer builds the local HTTP server with every handler mounted.
func (a *App) NewServer() *server.Server {
	srv := server.New(a.Cfg.Server, logger.Get("server"))
	srv.ApplyMiddleware()
	srv.RegisterDefaultEndpoints(a.Name, a.Client)
	srv.MountHandlers(a.Handlers)
	return srv
}

// RunServer serves every handler on the local HTTP server until a shutdown
// signal arrives or ctx is canceled.
func (a *App) RunServer(ctx context.Context) error {
	srv := a.NewServer()
	if err := srv.Start(ctx); err != nil {
		return err
	}
	for _, r := range srv.Routes() {
		a.Logger.Debug("Route registered", map[string]interface{}{
			"method": r.Method,
			"path":   r.Path,
		})
	}

	a.WaitForSignal(ctx)

	stopCtx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()

	stopErr := srv.Stop(stopCtx)
	if err := a.Shutdown(stopCtx); err != nil && stopErr == nil {
		stopErr = err
	}
	return stopErr
}

// WaitForSignal blocks until SIGINT/SIGTERM or context cancellation.
func (a *App) WaitForSignal(ctx context.Context) os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		a.Logger.Info("Received shutdown signal", map[string]interface{}{
			"signal": sig.String(),
		})
		return sig
	case <-ctx.Done():
		a.Logger.Info("Context canceled, shutting down")
		return nil
	}
}

// Shutdown runs the OnStop hooks, then flushes and stops telemetry.
func (a *App) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.gracefulTimeout)
	defer cancel()

	var shutdownErr error
	if err := runHooks(ctx, a.onStop); err != nil {
		a.Logger.Error("OnStop hook error", map[string]interface{}{
			logger.FieldError: err.Error(),
		})
		shutdownErr = err
	}
	if err := a.Telemetry.Shutdown(ctx); err != nil {
		a.Logger.Error("Telemetry shutdown error", map[string]interface{}{
			logger.FieldError: err.Error(),
		})
		if shutdownErr == nil {
			shutdownErr = err
		}
	}
	a.Logger.Info("Application shutdown complete")
	return shutdownErr
}

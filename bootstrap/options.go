package bootstrap

import (
	"time"

	"github.com/kbukum/cognito-gateway/cognito"
	"github.com/kbukum/cognito-gateway/config"
	"github.com/kbukum/cognito-gateway/logger"
)

// Option configures the App during creation.
type Option func(*appOptions)

type appOptions struct {
	logger          *logger.Logger
	api             cognito.API
	loader          []config.LoaderOption
	gracefulTimeout *time.Duration
}

func resolveOptions(opts []Option) *appOptions {
	o := &appOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger for the application.
// If not set, the logger is initialized from the config's logging section.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) {
		o.logger = l
	}
}

// WithAPI backs the Cognito client with api instead of the AWS SDK.
func WithAPI(api cognito.API) Option {
	return func(o *appOptions) {
		o.api = api
	}
}

// WithLoaderOptions passes options to the config loader used by Load.
func WithLoaderOptions(opts ...config.LoaderOption) Option {
	return func(o *appOptions) {
		o.loader = append(o.loader, opts...)
	}
}

// WithGracefulTimeout sets the maximum duration for graceful shutdown.
func WithGracefulTimeout(d time.Duration) Option {
	return func(o *appOptions) {
		o.gracefulTimeout = &d
	}
}

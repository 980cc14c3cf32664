package bootstrap

import (
	"fmt"
	"os"

	"github.com/kbukum/cognito-gateway/cognito"
	"github.com/kbukum/cognito-gateway/config"
	"github.com/kbukum/cognito-gateway/observability"
	"github.com/kbukum/cognito-gateway/server"
	"github.com/kbukum/cognito-gateway/version"
)

// Config is the configuration of every cognito-gateway binary.
//
//	name: login
//	environment: production
//	cognito:
//	  user_pool_id: eu-west-1_AbCdEf123
//	  client_id: ...
//	  client_secret: ...
//	telemetry:
//	  enabled: true
//	  endpoint: otel-collector:4318
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Cognito   cognito.Config       `yaml:"cognito" mapstructure:"cognito"`
	Server    server.Config        `yaml:"server" mapstructure:"server"`
	Telemetry observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// legacyEnv maps the unprefixed variables of existing Lambda deployments
// onto Cognito settings. Prefixed COGNITO_* variables take precedence.
var legacyEnv = map[string]func(*cognito.Config) *string{
	"USER_POOL_ID":  func(c *cognito.Config) *string { return &c.UserPoolID },
	"CLIENT_ID":     func(c *cognito.Config) *string { return &c.ClientID },
	"CLIENT_SECRET": func(c *cognito.Config) *string { return &c.ClientSecret },
}

// applyLegacyEnv fills empty Cognito settings from legacy variables.
func (c *Config) applyLegacyEnv(lookup func(string) (string, bool)) {
	for key, field := range legacyEnv {
		dst := field(&c.Cognito)
		if *dst != "" {
			continue
		}
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
}

// ApplyDefaults fills unset fields of every section.
func (c *Config) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	if c.Version == "" {
		c.Version = version.Version
	}
	c.Cognito.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Cognito.Validate(); err != nil {
		return fmt.Errorf("config.cognito: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Telemetry.Validate(); err != nil {
		return fmt.Errorf("config.telemetry: %w", err)
	}
	return nil
}

// LoadConfig reads the configuration of serviceName from its config file,
// .env files and the environment, then applies defaults and validates it.
func LoadConfig(serviceName string, opts ...config.LoaderOption) (*Config, error) {
	cfg := &Config{}
	if err := config.LoadConfig(serviceName, cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = serviceName
	}
	cfg.applyLegacyEnv(os.LookupEnv)

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

package cognito

import (
	"strings"

	"github.com/kbukum/cognito-gateway/validation"
)

// DefaultRegion is used when neither the region nor a region-prefixed user
// pool ID is configured.
const DefaultRegion = "us-east-1"

const userPoolIDPattern = `^[\w-]+_[0-9a-zA-Z]+$`

// Config holds the user pool and app client the handlers talk to.
type Config struct {
	// Region is the AWS region of the user pool.
	Region string `yaml:"region" mapstructure:"region"`

	// UserPoolID is the pool ID, e.g. "eu-west-1_AbCdEf123".
	UserPoolID string `yaml:"user_pool_id" mapstructure:"user_pool_id"`

	// ClientID is the app client ID.
	ClientID string `yaml:"client_id" mapstructure:"client_id"`

	// ClientSecret is the app client secret used for SECRET_HASH.
	ClientSecret string `yaml:"client_secret" mapstructure:"client_secret"`

	// Endpoint overrides the service endpoint (e.g. a local emulator).
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// AccessKey and SecretKey set static credentials. When empty the
	// default AWS credential chain (the Lambda execution role) is used.
	AccessKey string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey string `yaml:"secret_key" mapstructure:"secret_key"`
}

// ApplyDefaults derives the region from the user pool ID when unset.
func (c *Config) ApplyDefaults() {
	if c.Region != "" {
		return
	}
	if region, _, ok := strings.Cut(c.UserPoolID, "_"); ok && region != "" {
		c.Region = region
		return
	}
	c.Region = DefaultRegion
}

// Validate checks that the Cognito configuration is usable.
func (c *Config) Validate() error {
	v := validation.New()
	v.Required("cognito.region", c.Region)
	v.Required("cognito.user_pool_id", c.UserPoolID)
	v.Pattern("cognito.user_pool_id", c.UserPoolID, userPoolIDPattern)
	v.Required("cognito.client_id", c.ClientID)
	v.Required("cognito.client_secret", c.ClientSecret)
	v.Custom((c.AccessKey == "") == (c.SecretKey == ""), "cognito.access_key", "and cognito.secret_key must be set together")
	return v.Validate()
}

// secretHash computes the SECRET_HASH for subject with this app client.
func (c *Config) secretHash(subject string) string {
	return SecretHash(c.ClientSecret, subject, c.ClientID)
}

// Package config loads service configuration from a YAML file, an optional
// .env file and the process environment.
//
// Environment variables win over file values and are mapped onto nested keys
// by splitting on underscores, so COGNITO_CLIENT_ID fills cognito.client_id.
// Lambda deployments usually configure everything through the environment
// and ship no file at all.
//
// # Usage
//
//	var cfg bootstrap.Config
//	if err := config.LoadConfig("signup", &cfg); err != nil {
//	    return err
//	}
package config

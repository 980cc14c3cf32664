// Package validation checks request parameters and configuration values.
//
// Struct tag validation reports the first failing field, in declaration
// order, as a 400 *errors.AppError named after the field's json tag:
//
//	type loginParams struct {
//	    Username string `json:"username" validate:"required"`
//	    Password string `json:"password" validate:"required"`
//	}
//	err := validation.Validate(params) // "Bad Request. Missing required parameter: username"
//
// Programmatic validation collects every failure:
//
//	v := validation.New()
//	v.Required("cognito.client_id", cfg.ClientID)
//	err := v.Validate()
package validation

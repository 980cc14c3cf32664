package handler

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-viper/mapstructure/v2"

	"github.com/kbukum/cognito-gateway/errors"
	"github.com/kbukum/cognito-gateway/validation"
)

// MalformedBody is the detail of the 400 returned for a body that is not a
// JSON object.
const MalformedBody = "Malformed request body"

type signUpParams struct {
	Username string `mapstructure:"username" json:"username" validate:"required"`
	Password string `mapstructure:"password" json:"password" validate:"required"`
	Email    string `mapstructure:"email" json:"email" validate:"required"`
}

type loginParams struct {
	Username string `mapstructure:"username" json:"username" validate:"required"`
	Password string `mapstructure:"password" json:"password" validate:"required"`
}

type forgotParams struct {
	Username string `mapstructure:"username" json:"username" validate:"required"`
}

type changePasswordParams struct {
	AccessToken string `json:"accessToken" validate:"required"`
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type refreshParams struct {
	Token string `json:"token" validate:"required"`

	// Username, when given, is the subject of the refresh SECRET_HASH.
	Username string `json:"username,omitempty"`
}

// newDecoder decodes into dst matching keys against tagName exactly. Keys
// that differ only in case are treated as absent.
func newDecoder(dst any, tagName string) (*mapstructure.Decoder, error) {
	return mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:   tagName,
		Result:    dst,
		MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
	})
}

// fromQuery decodes the query string into dst and validates it.
func fromQuery(req events.APIGatewayProxyRequest, dst any) error {
	dec, err := newDecoder(dst, "mapstructure")
	if err != nil {
		return errors.Internal(err)
	}
	if err := dec.Decode(req.QueryStringParameters); err != nil {
		return errors.BadRequest("Malformed query string").WithCause(err)
	}
	return validation.Validate(dst)
}

// fromBody decodes the JSON object body into dst and validates it. A missing
// body reads as {}.
func fromBody(req events.APIGatewayProxyRequest, dst any) error {
	raw := req.Body
	if req.IsBase64Encoded && raw != "" {
		decoded, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return errors.BadRequest(MalformedBody).WithCause(err)
		}
		raw = string(decoded)
	}
	if strings.TrimSpace(raw) == "" {
		raw = "{}"
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return errors.BadRequest(MalformedBody).WithCause(err)
	}
	dec, err := newDecoder(dst, "json")
	if err != nil {
		return errors.Internal(err)
	}
	if err := dec.Decode(fields); err != nil {
		return errors.BadRequest(MalformedBody).WithCause(err)
	}
	return validation.Validate(dst)
}

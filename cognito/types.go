package cognito

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// Result JSON names match the provider's wire format so callers see the
// same shape the Cognito API returns.

// Attribute is a user attribute name/value pair.
type Attribute struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

// CodeDeliveryDetails says where a confirmation or reset code was sent.
type CodeDeliveryDetails struct {
	AttributeName  string `json:"AttributeName,omitempty"`
	DeliveryMedium string `json:"DeliveryMedium,omitempty"`
	Destination    string `json:"Destination,omitempty"`
}

// SignUpResult is the outcome of a registration.
type SignUpResult struct {
	UserConfirmed       bool                 `json:"UserConfirmed"`
	UserSub             string               `json:"UserSub"`
	CodeDeliveryDetails *CodeDeliveryDetails `json:"CodeDeliveryDetails,omitempty"`
}

// UserResult is an existing user record.
type UserResult struct {
	Username             string      `json:"Username"`
	UserAttributes       []Attribute `json:"UserAttributes"`
	UserCreateDate       *time.Time  `json:"UserCreateDate,omitempty"`
	UserLastModifiedDate *time.Time  `json:"UserLastModifiedDate,omitempty"`
	Enabled              bool        `json:"Enabled"`
	UserStatus           string      `json:"UserStatus,omitempty"`
	PreferredMfaSetting  string      `json:"PreferredMfaSetting,omitempty"`
	UserMFASettingList   []string    `json:"UserMFASettingList,omitempty"`
}

// Attribute returns the value of the named attribute, if present.
func (u *UserResult) Attribute(name string) (string, bool) {
	for _, a := range u.UserAttributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AuthenticationResult holds issued tokens. RefreshToken is empty for
// refresh flows.
type AuthenticationResult struct {
	AccessToken  string `json:"AccessToken,omitempty"`
	ExpiresIn    int32  `json:"ExpiresIn,omitempty"`
	IdToken      string `json:"IdToken,omitempty"`
	RefreshToken string `json:"RefreshToken,omitempty"`
	TokenType    string `json:"TokenType,omitempty"`
}

// AuthResult is the outcome of a login or refresh. Either
// AuthenticationResult or a challenge is set.
type AuthResult struct {
	AuthenticationResult *AuthenticationResult `json:"AuthenticationResult,omitempty"`
	ChallengeName        string                `json:"ChallengeName,omitempty"`
	ChallengeParameters  map[string]string     `json:"ChallengeParameters,omitempty"`
	Session              string                `json:"Session,omitempty"`
}

// CodeDeliveryResult is returned by operations that send a code.
type CodeDeliveryResult struct {
	CodeDeliveryDetails *CodeDeliveryDetails `json:"CodeDeliveryDetails,omitempty"`
}

// EmptyResult is returned by operations whose provider response has no
// fields. It encodes as {}.
type EmptyResult struct{}

func toAttributes(attrs []types.AttributeType) []Attribute {
	out := make([]Attribute, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, Attribute{Name: aws.ToString(a.Name), Value: aws.ToString(a.Value)})
	}
	return out
}

func toCodeDeliveryDetails(d *types.CodeDeliveryDetailsType) *CodeDeliveryDetails {
	if d == nil {
		return nil
	}
	return &CodeDeliveryDetails{
		AttributeName:  aws.ToString(d.AttributeName),
		DeliveryMedium: string(d.DeliveryMedium),
		Destination:    aws.ToString(d.Destination),
	}
}

func toAuthenticationResult(r *types.AuthenticationResultType) *AuthenticationResult {
	if r == nil {
		return nil
	}
	return &AuthenticationResult{
		AccessToken:  aws.ToString(r.AccessToken),
		ExpiresIn:    r.ExpiresIn,
		IdToken:      aws.ToString(r.IdToken),
		RefreshToken: aws.ToString(r.RefreshToken),
		TokenType:    aws.ToString(r.TokenType),
	}
}

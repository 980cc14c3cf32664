package cognito

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SecretHash returns base64(HMAC-SHA256(clientSecret, subject+clientID)),
// the SECRET_HASH Cognito expects from app clients that have a secret.
// Inputs are not validated; empty strings hash like any other value.
func SecretHash(clientSecret, subject, clientID string) string {
	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(subject + clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

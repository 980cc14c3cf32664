package handler

import "github.com/golang-jwt/jwt/v5"

// tokenSubject reads the sub claim of a JWT without verifying it. It is used
// for log fields only; an unparseable token yields "".
func tokenSubject(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired reports whether the credential is a JWT whose expiry has
// passed. The token is parsed without signature verification; the client
// never trusts claims for authorization, it only uses the expiry to skip a
// request that is certain to come back 401. Opaque non-JWT credentials are
// never treated as expired here.
func tokenExpired(tokenString string) bool {
	token, _, err := new(jwt.Parser).ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}

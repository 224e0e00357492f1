package devserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// Context key types to avoid collisions
type contextKey string

const (
	usernameKey contextKey = "username"
	roleKey     contextKey = "role"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "

	errAuthHeaderRequired = "Authorization header required"
	errInvalidAuthHeader  = "Invalid authorization header format"
	errInvalidToken       = "Invalid token"
)

// issueToken creates an HS256 token carrying the username and role claim.
func (s *Server) issueToken(username, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	})
	return token.SignedString(s.signingKey)
}

// authMiddleware validates bearer tokens and puts the user identity into the
// request context. Login and metrics are the only unauthenticated paths.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" || r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get(authorizationHeader)
		if authHeader == "" {
			log.Warn().Str("path", r.URL.Path).Msg("Authorization header missing")
			writeError(w, http.StatusUnauthorized, errAuthHeaderRequired)
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Warn().Str("path", r.URL.Path).Msg("Invalid authorization header format")
			writeError(w, http.StatusUnauthorized, errInvalidAuthHeader)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			return s.signingKey, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			log.Warn().Err(err).Str("path", r.URL.Path).Msg("Token validation failed")
			writeError(w, http.StatusUnauthorized, errInvalidToken)
			return
		}

		username, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)

		ctx := context.WithValue(r.Context(), usernameKey, username)
		ctx = context.WithValue(ctx, roleKey, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userFromContext(ctx context.Context) (username, role string) {
	username, _ = ctx.Value(usernameKey).(string)
	role, _ = ctx.Value(roleKey).(string)
	return username, role
}

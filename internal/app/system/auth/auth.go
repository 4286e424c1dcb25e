// internal/app/system/auth/auth.go

// Package auth verifies bearer tokens from the external identity provider
// and exposes the verified caller identity to downstream handlers.
//
// The service itself issues no credentials: a client obtains an ID token
// from the identity provider, sends it as "Authorization: Bearer <token>",
// and RequireToken verifies it per request. Nothing is cached between
// requests and no session state exists.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/dalemusser/socialevents/internal/app/system/httpjson"
)

// unauthorizedMessage is the fixed body clients have always received for
// any authentication failure; it deliberately does not distinguish a
// missing header from a bad token.
const unauthorizedMessage = "Unauthorized access"

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

// Identity is the verified caller identity attached to the request context.
type Identity struct {
	Email  string
	Claims map[string]any
}

// Verifier validates a raw bearer token and returns the caller's identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

type ctxKey string

const identityKey ctxKey = "identity"

// CurrentIdentity returns the verified identity and a "found?" flag.
func CurrentIdentity(r *http.Request) (*Identity, bool) {
	id, ok := r.Context().Value(identityKey).(*Identity)
	return id, ok
}

// WithIdentity returns a request carrying the given identity. Handler
// tests use this to bypass the middleware.
func WithIdentity(r *http.Request, id *Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), identityKey, id))
}

// TokenFromHeader extracts the token from an Authorization header value of
// the form "Bearer <token>". The scheme match is case-insensitive.
func TokenFromHeader(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrMissingToken
	}
	return parts[1], nil
}

// RequireToken returns middleware that verifies the request's bearer token
// and injects the resulting Identity into the context. Requests with a
// missing, malformed, or invalid token receive
// 401 {"message":"Unauthorized access"} and never reach the next handler.
func RequireToken(v Verifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := TokenFromHeader(r.Header.Get("Authorization"))
			if err != nil {
				httpjson.Error(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			id, err := v.Verify(r.Context(), token)
			if err != nil {
				logger.Warn("token verification failed", zap.Error(err))
				httpjson.Error(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			next.ServeHTTP(w, WithIdentity(r, id))
		})
	}
}

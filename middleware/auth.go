// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const usernameKey contextKey = "username"

// TokenParser returns the username a session token was issued to
type TokenParser interface {
	Parse(token string) (string, error)
}

// RequireUser rejects requests without a valid bearer token and stores the
// token's username in the request context.
func RequireUser(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				ErrorResponse(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			username, err := tokens.Parse(token)
			if err != nil {
				ErrorResponse(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUsername(r.Context(), username)))
		})
	}
}

// WithUsername returns a context carrying the authenticated username
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// Username returns the authenticated username, or "" outside RequireUser
func Username(ctx context.Context) string {
	u, _ := ctx.Value(usernameKey).(string)
	return u
}

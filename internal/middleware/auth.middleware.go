package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rajat8876/VendorIQ2/pkg/jwtutil"
	"github.com/rajat8876/VendorIQ2/pkg/response"
)

type contextKey string

const (
	ContextUserID contextKey = "user_id"
	ContextEmail  contextKey = "email"
)

// RequireAuth rejects requests without a valid bearer token and stashes
// the token's subject in the request context.
func RequireAuth(signer *jwtutil.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				response.Error(w, http.StatusUnauthorized, "missing or malformed token")
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := signer.Verify(token)
			if err != nil {
				if err == jwtutil.ErrExpiredToken {
					response.Error(w, http.StatusUnauthorized, "token expired")
					return
				}
				response.Error(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), ContextUserID, claims.UserID)
			ctx = context.WithValue(ctx, ContextEmail, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID extracts the authenticated user id set by RequireAuth.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ContextUserID).(string)
	return id, ok && id != ""
}

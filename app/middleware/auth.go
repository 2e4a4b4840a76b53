package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"simpleblog/app/auth"
	"simpleblog/app/models"
	"simpleblog/app/services"
)

type ctxKey int

const (
	userKey ctxKey = iota
	tokenKey
)

// RequireAuth extracts the bearer token, resolves the caller's identity and
// stores both the user and the raw token in the request context. All
// failures are 401; the detail string distinguishes expired tokens,
// invalid tokens and missing users, matching the resolver's behavior.
func RequireAuth(resolver *services.IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeDetail(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			token := strings.TrimPrefix(header, "Bearer ")

			user, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				writeDetail(w, http.StatusUnauthorized, authDetail(err))
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			ctx = context.WithValue(ctx, tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func authDetail(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return "Token has expired"
	case errors.Is(err, services.ErrUserNotFound):
		return "User not found"
	default:
		return "Could not validate token"
	}
}

// UserFromContext returns the authenticated user stored by RequireAuth.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// TokenFromContext returns the raw bearer token stored by RequireAuth.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

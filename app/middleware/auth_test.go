package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"simpleblog/app/auth"
	"simpleblog/app/models"
	"simpleblog/app/repositories/mock"
	"simpleblog/app/services"

	"github.com/stretchr/testify/assert"
)

func TestRequireAuth(t *testing.T) {
	users := mock.NewUserRepository()
	tokens := auth.NewTokenService([]byte("test-secret"))
	resolver := services.NewIdentityResolver(tokens, users)

	user := &models.User{
		Email:        "alice@example.com",
		Username:     "alice",
		Password:     "digest",
		RegisteredAt: time.Now(),
		IsActive:     true,
	}
	assert.NoError(t, users.Create(context.Background(), user))

	var gotUser *models.User
	var gotToken string
	handler := RequireAuth(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = UserFromContext(r.Context())
		gotToken, _ = TokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	detail := func(w *httptest.ResponseRecorder) string {
		var body map[string]string
		json.NewDecoder(w.Body).Decode(&body)
		return body["detail"]
	}

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/user/me/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Not authenticated", detail(w))
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/user/me/", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/user/me/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Could not validate token", detail(w))
	})

	t.Run("expired token", func(t *testing.T) {
		expired := auth.NewTokenServiceWithTTL([]byte("test-secret"), -time.Minute, -time.Minute)
		access, _, err := expired.Issue(user.ID, user.Email)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/user/me/", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Token has expired", detail(w))
	})

	t.Run("token for missing user", func(t *testing.T) {
		access, _, err := tokens.Issue(99, "ghost@example.com")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/user/me/", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "User not found", detail(w))
	})

	t.Run("valid token passes through user and token", func(t *testing.T) {
		access, _, err := tokens.Issue(user.ID, user.Email)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/user/me/", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotNil(t, gotUser)
		assert.Equal(t, user.Email, gotUser.Email)
		assert.Equal(t, access, gotToken)
	})
}

package services

import (
	"context"
	"testing"
	"time"

	"simpleblog/app/auth"
	"simpleblog/app/repositories"
	"simpleblog/app/repositories/mock"

	"github.com/stretchr/testify/assert"
)

func newTestUserService() (*UserService, *mock.UserRepository, *auth.TokenService) {
	userRepo := mock.NewUserRepository()
	tokens := auth.NewTokenService([]byte("test-secret"))
	return NewUserService(userRepo, tokens), userRepo, tokens
}

func TestUserServiceRegister(t *testing.T) {
	service, _, _ := newTestUserService()
	ctx := context.Background()

	t.Run("register hashes password and sets defaults", func(t *testing.T) {
		user, err := service.Register(ctx, RegisterInput{
			Email:     "alice@example.com",
			Username:  "alice",
			FirstName: "Alice",
			LastName:  "Smith",
			Password:  "hunter2",
		})
		assert.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		assert.NotEqual(t, "hunter2", user.Password)
		assert.True(t, auth.CheckPassword("hunter2", user.Password))
		assert.True(t, user.IsActive)
		assert.False(t, user.IsSuperuser)
		assert.False(t, user.RegisteredAt.IsZero())
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := service.Register(ctx, RegisterInput{
			Email:    "alice@example.com",
			Username: "alice2",
			Password: "hunter2",
		})
		assert.ErrorIs(t, err, repositories.ErrConflict)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		_, err := service.Register(ctx, RegisterInput{
			Email:    "alice2@example.com",
			Username: "alice",
			Password: "hunter2",
		})
		assert.ErrorIs(t, err, repositories.ErrConflict)
	})
}

func TestUserServiceAuthenticate(t *testing.T) {
	service, _, tokens := newTestUserService()
	ctx := context.Background()

	user, err := service.Register(ctx, RegisterInput{
		Email:    "bob@example.com",
		Username: "bob",
		Password: "secret123",
	})
	assert.NoError(t, err)

	t.Run("valid credentials issue decodable tokens", func(t *testing.T) {
		access, refresh, err := service.Authenticate(ctx, "bob@example.com", "secret123")
		assert.NoError(t, err)

		accessClaims, err := tokens.Validate(access)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, accessClaims.UserID)
		assert.Equal(t, "bob@example.com", accessClaims.Subject)

		refreshClaims, err := tokens.Validate(refresh)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, refreshClaims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := service.Authenticate(ctx, "bob@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email gives the same error", func(t *testing.T) {
		_, _, err := service.Authenticate(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestIdentityResolver(t *testing.T) {
	userRepo := mock.NewUserRepository()
	tokens := auth.NewTokenService([]byte("test-secret"))
	service := NewUserService(userRepo, tokens)
	resolver := NewIdentityResolver(tokens, userRepo)
	ctx := context.Background()

	user, err := service.Register(ctx, RegisterInput{
		Email:    "carol@example.com",
		Username: "carol",
		Password: "secret123",
	})
	assert.NoError(t, err)

	t.Run("valid token resolves to the user", func(t *testing.T) {
		access, _, err := tokens.Issue(user.ID, user.Email)
		assert.NoError(t, err)

		resolved, err := resolver.Resolve(ctx, access)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, resolved.ID)
		assert.Equal(t, user.Email, resolved.Email)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := auth.NewTokenServiceWithTTL([]byte("test-secret"), -time.Minute, -time.Minute)
		access, _, err := expired.Issue(user.ID, user.Email)
		assert.NoError(t, err)

		_, err = resolver.Resolve(ctx, access)
		assert.ErrorIs(t, err, auth.ErrTokenExpired)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "garbage")
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	})

	t.Run("token for a missing user", func(t *testing.T) {
		access, _, err := tokens.Issue(99, "ghost@example.com")
		assert.NoError(t, err)

		_, err = resolver.Resolve(ctx, access)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("inactive user is treated as missing", func(t *testing.T) {
		inactive, err := service.Register(ctx, RegisterInput{
			Email:    "dan@example.com",
			Username: "dan",
			Password: "secret123",
		})
		assert.NoError(t, err)
		inactive.IsActive = false

		access, _, err := tokens.Issue(inactive.ID, inactive.Email)
		assert.NoError(t, err)

		_, err = resolver.Resolve(ctx, access)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

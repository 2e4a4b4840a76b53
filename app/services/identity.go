package services

import (
	"context"
	"errors"

	"simpleblog/app/auth"
	"simpleblog/app/models"
	"simpleblog/app/repositories"
)

// ErrUserNotFound means a token validated but no matching active user
// exists. It maps to 401 at the boundary, with its own detail message.
var ErrUserNotFound = errors.New("user not found")

// IdentityResolver turns a presented token into an authenticated user.
// Every call re-resolves against the user store; there is no caching.
type IdentityResolver struct {
	tokens *auth.TokenService
	users  repositories.UserRepository
}

func NewIdentityResolver(tokens *auth.TokenService, users repositories.UserRepository) *IdentityResolver {
	return &IdentityResolver{
		tokens: tokens,
		users:  users,
	}
}

// Resolve validates the token and loads the user by the embedded subject
// email. Invalid or expired tokens propagate the auth package errors.
func (r *IdentityResolver) Resolve(ctx context.Context, token string) (*models.User, error) {
	claims, err := r.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := r.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserNotFound
	}

	return user, nil
}

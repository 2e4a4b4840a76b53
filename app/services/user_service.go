package services

import (
	"context"
	"errors"
	"time"

	"simpleblog/app/auth"
	"simpleblog/app/models"
	"simpleblog/app/repositories"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password, so login failures never reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// UserService handles registration and authentication.
type UserService struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenService
}

func NewUserService(userRepo repositories.UserRepository, tokens *auth.TokenService) *UserService {
	return &UserService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register hashes the password and persists a new active, non-superuser
// account. A duplicate email or username surfaces as ErrConflict.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	digest, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        input.Email,
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Password:     digest,
		RegisteredAt: time.Now(),
		IsActive:     true,
		IsSuperuser:  false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the credentials and issues a token pair.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (access, refresh string, err error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}

	if !auth.CheckPassword(password, user.Password) {
		return "", "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, user.Email)
}

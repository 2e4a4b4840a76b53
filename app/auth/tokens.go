package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("could not validate token")
)

const (
	accessTokenTTL  = 30 * time.Minute
	refreshTokenTTL = 24 * time.Hour
)

// Claims carried by both access and refresh tokens. Subject holds the
// user's email.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed tokens. There is no
// server-side session state; a token is valid until it expires, unless a
// revocation store is attached and the token id has been denylisted.
type TokenService struct {
	secret      []byte
	accessTTL   time.Duration
	refreshTTL  time.Duration
	revocations *RevocationStore
}

// NewTokenService creates a TokenService with the standard expiry policy:
// access tokens live 30 minutes, refresh tokens 24 hours.
func NewTokenService(secret []byte) *TokenService {
	return NewTokenServiceWithTTL(secret, accessTokenTTL, refreshTokenTTL)
}

// NewTokenServiceWithTTL creates a TokenService with custom expiries.
func NewTokenServiceWithTTL(secret []byte, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// SetRevocationStore attaches an optional denylist consulted on every
// validation.
func (s *TokenService) SetRevocationStore(store *RevocationStore) {
	s.revocations = store
}

// RevocationEnabled reports whether a denylist is attached.
func (s *TokenService) RevocationEnabled() bool {
	return s.revocations != nil
}

// Issue produces an access/refresh token pair for the given identity.
func (s *TokenService) Issue(userID uint, email string) (access, refresh string, err error) {
	access, err = s.sign(userID, email, s.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.sign(userID, email, s.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Validate verifies a token's signature and expiry and returns its claims.
// Expired tokens fail with ErrTokenExpired; every other failure, including
// a revoked token id, maps to ErrTokenInvalid.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if s.revocations != nil {
		revoked, err := s.revocations.IsRevoked(claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrTokenInvalid
		}
	}
	return claims, nil
}

// Refresh validates a refresh token and mints a new access token bound to
// the same identity. The refresh token itself is not rotated.
func (s *TokenService) Refresh(refreshToken string) (string, error) {
	claims, err := s.Validate(refreshToken)
	if err != nil {
		return "", err
	}
	return s.sign(claims.UserID, claims.Subject, s.accessTTL)
}

// Revoke denylists the given token until its natural expiry. It is a no-op
// error when no revocation store is attached.
func (s *TokenService) Revoke(tokenString string) error {
	if s.revocations == nil {
		return errors.New("revocation store not configured")
	}
	claims, err := s.Validate(tokenString)
	if err != nil {
		return err
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.revocations.Revoke(claims.ID, ttl)
}

func (s *TokenService) sign(userID uint, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

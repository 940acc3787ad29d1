// Package token issues and verifies the HMAC-signed bearer tokens that carry a
// request principal. The signing secret is process-wide configuration; every
// token embeds the username and admin flag alongside the registered claims.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"jobboard/internal/pkg/errs"
)

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token is expired")
)

// Claims is the payload carried by every issued token.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Service signs and verifies tokens with a shared HS256 secret.
type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewService creates a token service. The secret must not be empty; ttl of
// zero defaults to 24 hours.
func NewService(secret string, issuer string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("token signing secret")
	}
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	return &Service{secret: []byte(secret), issuer: issuer, ttl: ttl}, nil
}

// Issue signs a token for the given principal.
func (s *Service) Issue(username string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a signed token and returns its claims.
// Expired tokens fail with ErrTokenExpired; any other defect (malformed text,
// wrong signature, unexpected algorithm) fails with ErrTokenInvalid.
func (s *Service) Verify(signed string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(signed, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

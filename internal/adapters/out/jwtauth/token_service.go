// Package jwtauth issues and verifies HS256 access tokens and hashes operator
// passwords with bcrypt.
package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"deliveryhub/internal/core/domain/model/user"
	"deliveryhub/internal/core/ports"
	"deliveryhub/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 24 * time.Hour

var (
	ErrSecretIsRequired = errs.NewValueIsRequiredError("jwt_secret")
	ErrTokenIsInvalid   = errors.New("token is invalid or expired")
)

// tokenData is nested under "data" so tokens keep the console's claim layout.
type tokenData struct {
	UserID   int64  `json:"id_usuario"`
	Username string `json:"nombre_usuario"`
	Role     string `json:"rol"`
}

type tokenClaims struct {
	Data tokenData `json:"data"`
	jwt.RegisteredClaims
}

// TokenService implements ports.TokenService with a shared HMAC secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ ports.TokenService = (*TokenService)(nil)

// NewTokenService rejects an empty secret. A non-positive ttl falls back to DefaultTTL.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for u valid for the configured ttl.
func (s *TokenService) Issue(u *user.User) (string, error) {
	if err := u.Validate(); err != nil {
		return "", err
	}

	issuedAt := s.now()
	claims := tokenClaims{
		Data: tokenData{
			UserID:   u.ID().Int64(),
			Username: u.Username(),
			Role:     u.Role(),
		},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry. Every failure wraps ErrTokenIsInvalid.
func (s *TokenService) Verify(token string) (ports.Claims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return ports.Claims{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}

	return ports.Claims{
		UserID:   claims.Data.UserID,
		Username: claims.Data.Username,
		Role:     claims.Data.Role,
	}, nil
}

// Package auth issues and verifies the signed bearer tokens handed out on
// login. Tokens are compact JWTs signed with HS256; the secret is provided
// at construction and never read from process-global state.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ecommerce/auth-service/internal/common"
	"github.com/ecommerce/auth-service/internal/models"
)

// Claims is the token payload: standard registered claims plus the user
// identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// TokenManager signs and verifies tokens with a shared HMAC secret.
// Verification pins HS256; tokens signed with any other method are
// rejected as having an invalid signature.
type TokenManager struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

// NewTokenManager returns a TokenManager issuing tokens valid for the
// given duration.
func NewTokenManager(secret []byte, validity time.Duration) *TokenManager {
	return &TokenManager{
		secret:   secret,
		validity: validity,
		now:      time.Now,
	}
}

// WithClock replaces the time source. Test seam.
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	m.now = now
	return m
}

// Issue signs a token for user expiring after the configured validity.
func (m *TokenManager) Issue(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(m.now().Add(m.validity)),
		},
		UserID: user.ID,
		Email:  user.Email,
	})

	return token.SignedString(m.secret)
}

// Verify parses and checks tokenString, returning its claims on success.
// Failures map onto the common sentinels: ErrTokenMalformed when the token
// does not parse, ErrTokenExpired when the expiry claim has passed, and
// ErrTokenSignatureInvalid for everything else (wrong secret, tampered
// payload, unexpected signing method).
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		default:
			return nil, common.ErrTokenSignatureInvalid
		}
	}

	if !token.Valid {
		return nil, common.ErrTokenSignatureInvalid
	}

	return claims, nil
}

package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
)

const (
	// Expiry is the fixed lifetime of an issued token. There is no refresh
	// or revocation; clients re-authenticate when the token lapses.
	Expiry = 1 * time.Hour

	Issuer = "org-management-api"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the session identity embedded in each bearer token.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint64          `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
}

// Issue signs a token for the user with the fixed expiry.
func Issue(secret []byte, user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(Expiry)),
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a bearer token and returns its claims.
// Signature, expiry, and signing method failures all collapse into
// ErrInvalidToken so callers respond uniformly.
func Verify(secret []byte, tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	secret := []byte("test-secret")

	user := &models.User{
		ID:    42,
		Email: "a@x.com",
		Role:  models.UserRoleAdmin,
	}

	signed, err := Issue(secret, user)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := Verify(secret, signed)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, user.Email, claims.Email)
	require.Equal(t, user.Role, claims.Role)

	require.NotNil(t, claims.ExpiresAt)
	remaining := time.Until(claims.ExpiresAt.Time)
	require.Greater(t, remaining, 55*time.Minute)
	require.LessOrEqual(t, remaining, Expiry)
}

func TestVerify_WrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@x.com", Role: models.UserRoleUser}

	signed, err := Issue([]byte("secret-one"), user)
	require.NoError(t, err)

	_, err = Verify([]byte("secret-two"), signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	secret := []byte("test-secret")

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID: 1,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = Verify(secret, signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := Verify([]byte("test-secret"), "not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

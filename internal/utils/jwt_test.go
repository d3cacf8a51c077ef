package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTUtil_GenerateToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", time.Hour)

	tokenString, err := jwtUtil.GenerateToken(1, "alice@example.com")

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := jwtUtil.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "1", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTUtil_ValidateToken_InvalidToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", time.Hour)

	_, err := jwtUtil.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestJWTUtil_ValidateToken_ExpiredToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", -time.Hour)

	tokenString, err := jwtUtil.GenerateToken(1, "alice@example.com")
	require.NoError(t, err)

	_, err = jwtUtil.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTUtil_ValidateToken_WrongSecret(t *testing.T) {
	tokenString, _ := NewJWTUtil("secret1", time.Hour).GenerateToken(1, "alice@example.com")

	_, err := NewJWTUtil("secret2", time.Hour).ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTUtil_ValidateToken_InvalidSigningMethod(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", time.Hour)
	claims := &JWTClaims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	// HS384 shares the key type with HS256, only the algorithm differs
	tokenString, _ := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("secret"))

	_, err := jwtUtil.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTUtil_ValidateToken_MissingUserID(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", time.Hour)
	claims := &JWTClaims{
		Email: "ghost@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tokenString, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))

	_, err := jwtUtil.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTUtil_ValidateToken_MissingExpiry(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", time.Hour)
	tokenString, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &JWTClaims{UserID: 1}).SignedString([]byte("secret"))

	_, err := jwtUtil.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

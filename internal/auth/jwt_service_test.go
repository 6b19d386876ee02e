package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken(42, "user@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateToken(1, "a@example.com")
	assert.NoError(t, err)

	claims, err := NewJWTService("secret-b").ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_TamperedToken(t *testing.T) {
	service := NewJWTService("test-secret")
	token, err := service.GenerateToken(1, "a@example.com")
	assert.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	claims, err := service.ValidateToken(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := NewJWTService("test-secret")

	expired := &Claims{
		UserID: 7,
		Email:  "old@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	claims, err := service.ValidateToken(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_GarbageInput(t *testing.T) {
	service := NewJWTService("test-secret")

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		claims, err := service.ValidateToken(input)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

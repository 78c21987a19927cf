package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("controltower")
	require.NoError(t, err)
	require.NotEqual(t, "controltower", hash)

	require.True(t, CheckPasswordHash("controltower", hash))
	require.False(t, CheckPasswordHash("wrong", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	Configure("test-secret", time.Hour)

	token, err := GenerateJWT("dispatch@logicore.example", "Dispatch Desk", "dispatcher")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "dispatch@logicore.example", claims.Email)
	require.Equal(t, "Dispatch Desk", claims.Name)
	require.Equal(t, "dispatcher", claims.Role)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	Configure("test-secret", time.Nanosecond)
	defer Configure("test-secret", time.Hour)

	token, err := GenerateJWT("viewer@logicore.example", "Warehouse TV", "viewer")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = ParseToken(token)
	require.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	Configure("secret-one", time.Hour)
	token, err := GenerateJWT("admin@logicore.example", "Operations Admin", "admin")
	require.NoError(t, err)

	Configure("secret-two", time.Hour)
	_, err = ParseToken(token)
	require.Error(t, err)
}

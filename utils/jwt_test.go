package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("kitchen")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "kitchen", claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	claims := &CustomClaims{
		Role: "manager",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = ParseToken(forged)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	claims := &CustomClaims{
		Role: "attendant",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JWTSecret)
	require.NoError(t, err)

	_, err = ParseToken(expired)
	assert.Error(t, err)
}

func TestBlacklistedTokenIsRejected(t *testing.T) {
	token, err := GenerateToken("manager")
	require.NoError(t, err)
	claims, err := ParseToken(token)
	require.NoError(t, err)

	BlacklistToken(claims.ID, claims.ExpiresAt.Time)
	assert.True(t, IsTokenBlacklisted(claims.ID))

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestBlacklistEntriesExpire(t *testing.T) {
	BlacklistToken("old", time.Now().Add(-time.Second))
	assert.False(t, IsTokenBlacklisted("old"))
}

func TestCanAccess(t *testing.T) {
	assert.True(t, CanAccess("manager", "attendant", "manager"))
	assert.False(t, CanAccess("kitchen", "attendant", "manager"))
	assert.False(t, CanAccess("manager"))
}

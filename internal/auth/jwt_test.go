package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(ttl time.Duration) *TokenManager {
	return NewTokenManager(TokenConfig{Secret: "test-secret", TTL: ttl, Issuer: "compro"})
}

func TestGenerateAndParse(t *testing.T) {
	m := newManager(time.Hour)
	now := time.Now()

	token, err := m.Generate(42, "admin", "token-id", now, m.ExpiresAt(now))
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "token-id", claims.ID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "compro", claims.Issuer)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	require.NotNil(t, claims.ExpiresAt)
}

func TestExpiresAt_ZeroTTL(t *testing.T) {
	m := newManager(0)
	now := time.Now()
	assert.Nil(t, m.ExpiresAt(now))

	token, err := m.Generate(1, "admin", "jti", now, nil)
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestParse_Expired(t *testing.T) {
	m := newManager(time.Minute)
	issued := time.Now().Add(-time.Hour)

	token, err := m.Generate(1, "admin", "jti", issued, m.ExpiresAt(issued))
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestParse_WrongSecret(t *testing.T) {
	now := time.Now()
	token, err := newManager(time.Hour).Generate(1, "admin", "jti", now, nil)
	require.NoError(t, err)

	other := NewTokenManager(TokenConfig{Secret: "another-secret"})
	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "1", ID: "jti"}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = newManager(time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_MissingJTI(t *testing.T) {
	m := newManager(time.Hour)
	token, err := m.Generate(1, "admin", "", time.Now(), nil)
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestParse_Empty(t *testing.T) {
	_, err := newManager(time.Hour).Parse("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	token, err = ExtractBearerToken("bearer  xyz ")
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	for _, header := range []string{"", "Bearer", "Bearer ", "Bearer    ", "Basic abc", "Token abc"} {
		_, err := ExtractBearerToken(header)
		assert.ErrorIs(t, err, ErrInvalidFormat, "header=%q", header)
	}
}

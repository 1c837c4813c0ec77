package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClaims(email string, exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": email,
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
		"iss": "bistroboss",
		"aud": "bistroboss",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	authenticator := NewJWTAuthenticator("test-secret", "bistroboss", "bistroboss")

	tokenString, err := authenticator.GenerateToken(testClaims("a@x.com", time.Now().Add(time.Hour)))
	require.NoError(t, err)

	token, err := authenticator.ValidateToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", claims["sub"])
}

func TestValidateExpiredToken(t *testing.T) {
	authenticator := NewJWTAuthenticator("test-secret", "bistroboss", "bistroboss")

	tokenString, err := authenticator.GenerateToken(testClaims("a@x.com", time.Now().Add(-time.Minute)))
	require.NoError(t, err)

	_, err = authenticator.ValidateToken(tokenString)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateTamperedToken(t *testing.T) {
	authenticator := NewJWTAuthenticator("test-secret", "bistroboss", "bistroboss")

	tokenString, err := authenticator.GenerateToken(testClaims("a@x.com", time.Now().Add(time.Hour)))
	require.NoError(t, err)

	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = authenticator.ValidateToken(tampered)
	assert.Error(t, err)
}

func TestValidateTokenSignedWithOtherSecret(t *testing.T) {
	authenticator := NewJWTAuthenticator("test-secret", "bistroboss", "bistroboss")
	other := NewJWTAuthenticator("other-secret", "bistroboss", "bistroboss")

	tokenString, err := other.GenerateToken(testClaims("a@x.com", time.Now().Add(time.Hour)))
	require.NoError(t, err)

	_, err = authenticator.ValidateToken(tokenString)
	assert.Error(t, err)
}

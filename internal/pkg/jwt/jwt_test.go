package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_32_characters_min"

func TestService_RoundTrip(t *testing.T) {
	svc := New(testSecret, time.Hour)

	token, err := svc.GenerateToken("u-1", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "admin", claims.Username)
}

func TestService_RejectsWrongSigningMethod(t *testing.T) {
	svc := New(testSecret, time.Hour)

	// Same secret, different HMAC variant: must not validate.
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS384, Claims{
		UserID:   "u-1",
		Username: "admin",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}

func TestService_RejectsWrongSecret(t *testing.T) {
	svc := New(testSecret, time.Hour)
	other := New("a_completely_different_secret_key", time.Hour)

	token, err := other.GenerateToken("u-1", "admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestService_RejectsExpiredToken(t *testing.T) {
	svc := New(testSecret, -time.Minute)

	token, err := svc.GenerateToken("u-1", "admin")
	require.NoError(t, err)

	_, err = New(testSecret, time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

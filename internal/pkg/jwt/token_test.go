package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecocycle/ecocycle/internal/pkg/models"
)

var testCfg = models.JWTConfig{
	Secret:     "test-secret",
	Expiration: 60,
	Issuer:     "ecocycle-test",
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, expiresAt, err := GenerateToken(42, testCfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	userID, err := ValidateToken(token, testCfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken(42, testCfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "another-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	claims := jwtlib.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(-time.Hour).Unix(),
		"iss": testCfg.Issuer,
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testCfg.Secret))
	require.NoError(t, err)

	_, err = ValidateToken(token, testCfg.Secret)
	assert.Error(t, err)
}

func TestValidateToken_NonNumericSubject(t *testing.T) {
	claims := jwtlib.MapClaims{
		"sub": "not-a-number",
		"exp": time.Now().Add(time.Hour).Unix(),
		"iss": testCfg.Issuer,
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testCfg.Secret))
	require.NoError(t, err)

	_, err = ValidateToken(token, testCfg.Secret)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", testCfg.Secret)
	assert.Error(t, err)
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington-admin/app/config"
)

func setupConfig(t *testing.T) {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTSecret:  "test-secret",
		AdminEmail: "admin@mergington.edu",
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("mergington")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("mergington", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	setupConfig(t)

	token, err := GenerateJWT("admin@mergington.edu")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@mergington.edu", claims.Email)
	assert.Equal(t, "mergington-admin", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateJWTRejectsTampering(t *testing.T) {
	setupConfig(t)

	token, err := GenerateJWT("admin@mergington.edu")
	require.NoError(t, err)

	_, err = ValidateJWT(token + "x")
	assert.Error(t, err)

	config.AppConfig.JWTSecret = "rotated"
	_, err = ValidateJWT(token)
	assert.Error(t, err, "token signed with the old secret must be rejected")
}

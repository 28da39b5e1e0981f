package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Galang0304/kasir-pos-capstone/models"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("secret")
	user := &models.User{ID: "user-1", Name: "Budi", Role: models.RoleAdmin}

	token, err := GenerateToken(secret, time.Hour, user)
	require.NoError(t, err)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "Budi", claims.Name)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("secret"), time.Hour, &models.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = ParseToken([]byte("other"), token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	secret := []byte("secret")
	token, err := GenerateToken(secret, -time.Minute, &models.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = ParseToken(secret, token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken([]byte("secret"), "not.a.token")
	assert.Error(t, err)
}

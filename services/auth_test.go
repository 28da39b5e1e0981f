package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Galang0304/kasir-pos-capstone/apperr"
	"github.com/Galang0304/kasir-pos-capstone/models"
	"github.com/Galang0304/kasir-pos-capstone/repository"
	"github.com/Galang0304/kasir-pos-capstone/services"
	"github.com/Galang0304/kasir-pos-capstone/utils"
)

var testSecret = []byte("test-secret")

func newAuthFixture(t *testing.T) (*repository.MemoryStore, *services.AuthService) {
	t.Helper()
	hashed, err := utils.HashPassword("rahasia123")
	require.NoError(t, err)

	store := repository.NewMemoryStore()
	store.PutUser(models.User{ID: "user-1", Username: "budi", Password: hashed, Name: "Budi", Role: models.RoleKasir})
	return store, services.NewAuthService(store, testSecret, time.Hour)
}

func TestAuthenticate(t *testing.T) {
	_, auth := newAuthFixture(t)

	token, user, err := auth.Authenticate(context.Background(), "budi", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.NotEmpty(t, token)

	claims, err := auth.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, models.RoleKasir, claims.Role)
	assert.Equal(t, "Budi", claims.Name)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	_, auth := newAuthFixture(t)

	_, _, errWrongPass := auth.Authenticate(context.Background(), "budi", "salah")
	_, _, errNoUser := auth.Authenticate(context.Background(), "nobody", "rahasia123")

	require.Error(t, errWrongPass)
	require.Error(t, errNoUser)
	assert.True(t, apperr.IsAuth(errWrongPass))
	assert.True(t, apperr.IsAuth(errNoUser))
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	_, auth := newAuthFixture(t)

	user := &models.User{ID: "user-1", Name: "Budi", Role: models.RoleKasir}
	foreign, err := utils.GenerateToken([]byte("other-secret"), time.Hour, user)
	require.NoError(t, err)

	_, err = auth.Verify(foreign)
	assert.True(t, apperr.IsAuth(err))
}

func TestMe(t *testing.T) {
	_, auth := newAuthFixture(t)

	user, err := auth.Me(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "budi", user.Username)

	_, err = auth.Me(context.Background(), "nobody")
	assert.True(t, apperr.IsNotFound(err))
}

package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Galang0304/kasir-pos-capstone/controllers"
	"github.com/Galang0304/kasir-pos-capstone/middleware"
	"github.com/Galang0304/kasir-pos-capstone/models"
	"github.com/Galang0304/kasir-pos-capstone/repository"
	"github.com/Galang0304/kasir-pos-capstone/services"
	"github.com/Galang0304/kasir-pos-capstone/utils"
)

func newAuthAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	hashed, err := utils.HashPassword("rahasia123")
	require.NoError(t, err)

	store := repository.NewMemoryStore()
	store.PutUser(models.User{ID: "user-1", Username: "budi", Password: hashed, Name: "Budi", Role: models.RoleKasir})

	secret := []byte("test-secret")
	auth := services.NewAuthService(store, secret, time.Hour)

	app := fiber.New()
	ac := controllers.NewAuthController(auth)
	app.Post("/auth/login", ac.Login)
	app.Get("/auth/me", middleware.JWTProtected(auth), ac.Me)

	return &apiFixture{app: app, store: store, secret: secret}
}

func TestLoginEndpoint(t *testing.T) {
	f := newAuthAPIFixture(t)

	resp := f.request(t, http.MethodPost, "/auth/login", "", fiber.Map{
		"username": "budi",
		"password": "rahasia123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "user-1", body.User.ID)

	// The issued token works against a protected endpoint.
	resp = f.request(t, http.MethodGet, "/auth/me", body.Token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var me models.User
	decodeBody(t, resp, &me)
	assert.Equal(t, "budi", me.Username)
}

func TestLoginEndpointRejectsBadCredentials(t *testing.T) {
	f := newAuthAPIFixture(t)

	for _, creds := range []fiber.Map{
		{"username": "budi", "password": "salah"},
		{"username": "nobody", "password": "rahasia123"},
	} {
		resp := f.request(t, http.MethodPost, "/auth/login", "", creds)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	}
}

func TestMeRequiresToken(t *testing.T) {
	f := newAuthAPIFixture(t)

	resp := f.request(t, http.MethodGet, "/auth/me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

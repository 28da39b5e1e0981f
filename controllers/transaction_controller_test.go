package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
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

type apiFixture struct {
	app    *fiber.App
	store  *repository.MemoryStore
	secret []byte
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	store := repository.NewMemoryStore()
	store.PutUser(models.User{ID: "admin-1", Username: "admin", Name: "Admin", Role: models.RoleAdmin})
	store.PutUser(models.User{ID: "kasir-1", Username: "budi", Name: "Budi", Role: models.RoleKasir})
	store.PutUser(models.User{ID: "kasir-2", Username: "ani", Name: "Ani", Role: models.RoleKasir})
	store.PutCustomer(models.Customer{ID: "cust-1", Name: "Siti"})
	store.PutProduct(models.Product{ID: "prod-a", Name: "Kopi Susu", SKU: "KS-01", Price: 15000, Stock: 10})
	store.PutProduct(models.Product{ID: "prod-b", Name: "Roti Bakar", SKU: "RB-01", Price: 5000, Stock: 8})

	secret := []byte("test-secret")
	auth := services.NewAuthService(store, secret, time.Hour)
	loyalty := services.NewLoyaltyService(store, 1000)
	checkout := services.NewCheckoutService(store, loyalty)

	app := fiber.New()
	tc := controllers.NewTransactionController(checkout, store)
	tx := app.Group("/transactions", middleware.JWTProtected(auth))
	tx.Post("/", tc.Create)
	tx.Get("/", tc.List)
	tx.Get("/:id", tc.Get)

	return &apiFixture{app: app, store: store, secret: secret}
}

func (f *apiFixture) tokenFor(t *testing.T, id, name string, role models.Role) string {
	t.Helper()
	token, err := utils.GenerateToken(f.secret, time.Hour, &models.User{ID: id, Name: name, Role: role})
	require.NoError(t, err)
	return token
}

func (f *apiFixture) request(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestCreateTransactionEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	token := f.tokenFor(t, "kasir-1", "Budi", models.RoleKasir)

	resp := f.request(t, http.MethodPost, "/transactions/", token, fiber.Map{
		"items": []fiber.Map{
			{"product_id": "prod-a", "quantity": 2},
			{"product_id": "prod-b", "quantity": 1},
		},
		"customer_id":    "cust-1",
		"payment_method": "cash",
		"amount_paid":    35000,
		"discount":       1000,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var txn models.Transaction
	decodeBody(t, resp, &txn)
	assert.Equal(t, "INV-000001", txn.InvoiceNumber)
	assert.Equal(t, 34000.0, txn.Total)
	assert.Equal(t, "kasir-1", txn.CashierID)
}

func TestCreateTransactionRequiresToken(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.request(t, http.MethodPost, "/transactions/", "", fiber.Map{
		"items":          []fiber.Map{{"product_id": "prod-a", "quantity": 1}},
		"payment_method": "cash",
		"amount_paid":    15000,
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCreateTransactionInsufficientPayment(t *testing.T) {
	f := newAPIFixture(t)
	token := f.tokenFor(t, "kasir-1", "Budi", models.RoleKasir)

	resp := f.request(t, http.MethodPost, "/transactions/", token, fiber.Map{
		"items":          []fiber.Map{{"product_id": "prod-a", "quantity": 2}},
		"payment_method": "cash",
		"amount_paid":    29999,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// The rejected checkout left no invoice behind.
	resp = f.request(t, http.MethodGet, "/transactions/", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []models.Transaction
	decodeBody(t, resp, &list)
	assert.Empty(t, list)
}

func TestCreateTransactionInsufficientStock(t *testing.T) {
	f := newAPIFixture(t)
	token := f.tokenFor(t, "kasir-1", "Budi", models.RoleKasir)

	resp := f.request(t, http.MethodPost, "/transactions/", token, fiber.Map{
		"items":          []fiber.Map{{"product_id": "prod-a", "quantity": 11}},
		"payment_method": "cash",
		"amount_paid":    1000000,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetTransactionIsStable(t *testing.T) {
	f := newAPIFixture(t)
	token := f.tokenFor(t, "kasir-1", "Budi", models.RoleKasir)

	resp := f.request(t, http.MethodPost, "/transactions/", token, fiber.Map{
		"items":          []fiber.Map{{"product_id": "prod-b", "quantity": 1}},
		"payment_method": "cash",
		"amount_paid":    5000,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var txn models.Transaction
	decodeBody(t, resp, &txn)

	// Reading a committed invoice twice returns byte-identical bodies.
	read := func() []byte {
		r := f.request(t, http.MethodGet, "/transactions/"+txn.ID, token, nil)
		require.Equal(t, fiber.StatusOK, r.StatusCode)
		defer r.Body.Close()
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		return body
	}
	assert.Equal(t, read(), read())
}

func TestGetTransactionOwnership(t *testing.T) {
	f := newAPIFixture(t)
	owner := f.tokenFor(t, "kasir-1", "Budi", models.RoleKasir)

	resp := f.request(t, http.MethodPost, "/transactions/", owner, fiber.Map{
		"items":          []fiber.Map{{"product_id": "prod-b", "quantity": 1}},
		"payment_method": "cash",
		"amount_paid":    5000,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var txn models.Transaction
	decodeBody(t, resp, &txn)

	// Another kasir cannot read it; an admin can.
	other := f.tokenFor(t, "kasir-2", "Ani", models.RoleKasir)
	resp = f.request(t, http.MethodGet, "/transactions/"+txn.ID, other, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	admin := f.tokenFor(t, "admin-1", "Admin", models.RoleAdmin)
	resp = f.request(t, http.MethodGet, "/transactions/"+txn.ID, admin, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestListTransactionsScopedByRole(t *testing.T) {
	f := newAPIFixture(t)
	budi := f.tokenFor(t, "kasir-1", "Budi", models.RoleKasir)
	ani := f.tokenFor(t, "kasir-2", "Ani", models.RoleKasir)
	admin := f.tokenFor(t, "admin-1", "Admin", models.RoleAdmin)

	for _, token := range []string{budi, ani} {
		resp := f.request(t, http.MethodPost, "/transactions/", token, fiber.Map{
			"items":          []fiber.Map{{"product_id": "prod-b", "quantity": 1}},
			"payment_method": "cash",
			"amount_paid":    5000,
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	var list []models.Transaction
	resp := f.request(t, http.MethodGet, "/transactions/", budi, nil)
	decodeBody(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "kasir-1", list[0].CashierID)

	resp = f.request(t, http.MethodGet, "/transactions/", admin, nil)
	decodeBody(t, resp, &list)
	assert.Len(t, list, 2)
}

func TestGetTransactionNotFound(t *testing.T) {
	f := newAPIFixture(t)
	admin := f.tokenFor(t, "admin-1", "Admin", models.RoleAdmin)

	resp := f.request(t, http.MethodGet, "/transactions/nope", admin, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

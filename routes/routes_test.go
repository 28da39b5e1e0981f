package routes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Galang0304/kasir-pos-capstone/controllers"
	"github.com/Galang0304/kasir-pos-capstone/models"
	"github.com/Galang0304/kasir-pos-capstone/repository"
	"github.com/Galang0304/kasir-pos-capstone/routes"
	"github.com/Galang0304/kasir-pos-capstone/services"
	"github.com/Galang0304/kasir-pos-capstone/utils"
)

// stubReportStore lets the report handlers answer without a database, so the
// tests below exercise the route table and its guards end to end.
type stubReportStore struct{}

func (stubReportStore) Dashboard(ctx context.Context) (*models.DashboardReport, error) {
	return &models.DashboardReport{}, nil
}

func (stubReportStore) SalesSeries(ctx context.Context, groupBy string) ([]models.SalesPoint, error) {
	return nil, nil
}

func (stubReportStore) BestSellers(ctx context.Context, limit int) ([]models.BestSeller, error) {
	return nil, nil
}

func (stubReportStore) InventoryReport(ctx context.Context) ([]models.InventoryRow, error) {
	return nil, nil
}

func (stubReportStore) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	return nil, nil
}

var routesTestSecret = []byte("test-secret")

func newRoutedApp(t *testing.T) *fiber.App {
	t.Helper()

	store := repository.NewMemoryStore()
	auth := services.NewAuthService(store, routesTestSecret, time.Hour)
	loyalty := services.NewLoyaltyService(store, 1000)
	checkout := services.NewCheckoutService(store, loyalty)

	app := fiber.New()
	routes.SetupRoutes(app, &routes.Deps{
		Auth:         auth,
		AuthCtl:      controllers.NewAuthController(auth),
		ProductCtl:   controllers.NewProductController(nil),
		CategoryCtl:  controllers.NewCategoryController(nil),
		CustomerCtl:  controllers.NewCustomerController(nil),
		EmployeeCtl:  controllers.NewEmployeeController(nil),
		UserCtl:      controllers.NewUserController(nil),
		TxCtl:        controllers.NewTransactionController(checkout, store),
		ReportCtl:    controllers.NewReportController(stubReportStore{}),
		InventoryCtl: controllers.NewInventoryController(nil, services.NewStockService(store)),
	})
	return app
}

func routesToken(t *testing.T, role models.Role) string {
	t.Helper()
	token, err := utils.GenerateToken(routesTestSecret, time.Hour, &models.User{ID: "u-" + string(role), Name: "Test", Role: role})
	require.NoError(t, err)
	return token
}

func routesGet(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestReportReadsOpenToAllRoles(t *testing.T) {
	app := newRoutedApp(t)
	kasir := routesToken(t, models.RoleKasir)
	admin := routesToken(t, models.RoleAdmin)

	// The dashboard is the cashier's landing view; report reads need no
	// admin role.
	for _, path := range []string{
		"/reports/dashboard",
		"/reports/sales",
		"/reports/best-sellers",
		"/reports/inventory",
	} {
		resp := routesGet(t, app, path, kasir)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "kasir GET %s", path)
		resp = routesGet(t, app, path, admin)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "admin GET %s", path)
	}
}

func TestReportExportAdminOnly(t *testing.T) {
	app := newRoutedApp(t)

	resp := routesGet(t, app, "/reports/export/excel", routesToken(t, models.RoleKasir))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = routesGet(t, app, "/reports/export/excel", routesToken(t, models.RoleAdmin))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestReportsRequireAuthentication(t *testing.T) {
	app := newRoutedApp(t)

	resp := routesGet(t, app, "/reports/dashboard", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

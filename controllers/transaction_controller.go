package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Galang0304/kasir-pos-capstone/models"
	"github.com/Galang0304/kasir-pos-capstone/services"
)

type TransactionController struct {
	checkout *services.CheckoutService
	store    services.Store
}

func NewTransactionController(checkout *services.CheckoutService, store services.Store) *TransactionController {
	return &TransactionController{checkout: checkout, store: store}
}

// Create godoc
//
//	@Summary	Checkout a cart into a committed invoice
//	@Tags		Transaction
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Router		/transactions [post]
//
// POST /transactions
func (tc *TransactionController) Create(c *fiber.Ctx) error {
	var req services.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	// The acting cashier comes from the verified token only.
	invoice, err := tc.checkout.Checkout(c.Context(), actingUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// GET /transactions (admin: all; kasir: own only). Optional start/end date
// filter.
func (tc *TransactionController) List(c *fiber.Ctx) error {
	start, end, err := parseDateRange(c)
	if err != nil {
		return respondError(c, err)
	}

	filter := models.TransactionFilter{Start: start, End: end}
	if actingRole(c) != models.RoleAdmin {
		filter.CashierID = actingUserID(c)
	}

	list, err := tc.store.ListTransactions(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	if list == nil {
		list = []models.Transaction{}
	}
	return c.JSON(list)
}

// GET /transactions/:id (kasir may only read their own invoices)
func (tc *TransactionController) Get(c *fiber.Ctx) error {
	t, err := tc.store.TransactionByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if actingRole(c) != models.RoleAdmin && t.CashierID != actingUserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
	}
	return c.JSON(t)
}

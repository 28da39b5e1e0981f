package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Galang0304/kasir-pos-capstone/repository"
	"github.com/Galang0304/kasir-pos-capstone/services"
)

// InventoryController covers stock views and manual adjustments. Checkout
// decrements never pass through here.
type InventoryController struct {
	store *repository.MongoStore
	stock *services.StockService
}

func NewInventoryController(store *repository.MongoStore, stock *services.StockService) *InventoryController {
	return &InventoryController{store: store, stock: stock}
}

// GET /inventory/summary
func (ic *InventoryController) Summary(c *fiber.Ctx) error {
	summary, err := ic.store.InventorySummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// GET /inventory/low-stock
func (ic *InventoryController) LowStock(c *fiber.Ctx) error {
	list, err := ic.store.LowStockProducts(c.Context(), c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// POST /inventory/adjust
func (ic *InventoryController) Adjust(c *fiber.Ctx) error {
	var body struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
		Type      string `json:"type"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	if err := ic.stock.Adjust(c.Context(), body.ProductID, body.Quantity, body.Type); err != nil {
		return respondError(c, err)
	}

	product, err := ic.store.ProductByID(c.Context(), body.ProductID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "stock adjusted", "product": product})
}

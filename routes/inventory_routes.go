package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Galang0304/kasir-pos-capstone/middleware"
	"github.com/Galang0304/kasir-pos-capstone/models"
)

func InventoryRoutes(r fiber.Router, d *Deps) {
	inventory := r.Group("/inventory")

	inventory.Get("/summary", d.InventoryCtl.Summary)
	inventory.Get("/low-stock", d.InventoryCtl.LowStock)

	// Manual corrections are admin-only; sales decrement through checkout.
	inventory.Post("/adjust", middleware.RoleGuard(models.RoleAdmin), d.InventoryCtl.Adjust)
}

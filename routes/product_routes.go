package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Galang0304/kasir-pos-capstone/middleware"
	"github.com/Galang0304/kasir-pos-capstone/models"
)

func ProductRoutes(r fiber.Router, d *Deps) {
	products := r.Group("/products")

	// Reads are open to both roles; the catalog backs the cashier screen.
	products.Get("/", d.ProductCtl.List)
	products.Get("/:id", d.ProductCtl.Get)

	// Writes are admin-only.
	products.Post("/", middleware.RoleGuard(models.RoleAdmin), d.ProductCtl.Create)
	products.Put("/:id", middleware.RoleGuard(models.RoleAdmin), d.ProductCtl.Update)
	products.Delete("/:id", middleware.RoleGuard(models.RoleAdmin), d.ProductCtl.Delete)
}

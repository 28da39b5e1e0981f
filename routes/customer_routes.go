package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Galang0304/kasir-pos-capstone/middleware"
	"github.com/Galang0304/kasir-pos-capstone/models"
)

func CustomerRoutes(r fiber.Router, d *Deps) {
	customers := r.Group("/customers")

	// Kasir needs reads and creates for the checkout screen (member lookup,
	// walk-in registration).
	customers.Get("/", d.CustomerCtl.List)
	customers.Get("/:id", d.CustomerCtl.Get)
	customers.Post("/", d.CustomerCtl.Create)

	customers.Put("/:id", middleware.RoleGuard(models.RoleAdmin), d.CustomerCtl.Update)
	customers.Delete("/:id", middleware.RoleGuard(models.RoleAdmin), d.CustomerCtl.Delete)
}

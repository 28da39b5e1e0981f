package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Galang0304/kasir-pos-capstone/middleware"
	"github.com/Galang0304/kasir-pos-capstone/models"
)

func CategoryRoutes(r fiber.Router, d *Deps) {
	categories := r.Group("/categories")

	categories.Get("/", d.CategoryCtl.List)
	categories.Get("/:id", d.CategoryCtl.Get)

	categories.Post("/", middleware.RoleGuard(models.RoleAdmin), d.CategoryCtl.Create)
	categories.Put("/:id", middleware.RoleGuard(models.RoleAdmin), d.CategoryCtl.Update)
	categories.Delete("/:id", middleware.RoleGuard(models.RoleAdmin), d.CategoryCtl.Delete)
}

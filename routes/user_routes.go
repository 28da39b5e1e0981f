package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Galang0304/kasir-pos-capstone/middleware"
	"github.com/Galang0304/kasir-pos-capstone/models"
)

func UserRoutes(r fiber.Router, d *Deps) {
	// Account management is admin-only across the board.
	users := r.Group("/users", middleware.RoleGuard(models.RoleAdmin))

	users.Get("/", d.UserCtl.List)
	users.Get("/:id", d.UserCtl.Get)
	users.Post("/", d.UserCtl.Create)
	users.Put("/:id", d.UserCtl.Update)
	users.Delete("/:id", d.UserCtl.Delete)
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Galang0304/kasir-pos-capstone/middleware"
	"github.com/Galang0304/kasir-pos-capstone/models"
)

func EmployeeRoutes(r fiber.Router, d *Deps) {
	employees := r.Group("/employees", middleware.RoleGuard(models.RoleAdmin))

	employees.Get("/", d.EmployeeCtl.List)
	employees.Get("/:id", d.EmployeeCtl.Get)
	employees.Post("/", d.EmployeeCtl.Create)
	employees.Put("/:id", d.EmployeeCtl.Update)
	employees.Delete("/:id", d.EmployeeCtl.Delete)
}

// Package routes wires controllers onto the fiber app. One file per
// resource, all registered through SetupRoutes.
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Galang0304/kasir-pos-capstone/controllers"
	"github.com/Galang0304/kasir-pos-capstone/middleware"
	"github.com/Galang0304/kasir-pos-capstone/services"
)

// Deps carries everything route registration needs. Controllers are
// constructed in main and passed down; routes never build their own.
type Deps struct {
	Auth         *services.AuthService
	AuthCtl      *controllers.AuthController
	ProductCtl   *controllers.ProductController
	CategoryCtl  *controllers.CategoryController
	CustomerCtl  *controllers.CustomerController
	EmployeeCtl  *controllers.EmployeeController
	UserCtl      *controllers.UserController
	TxCtl        *controllers.TransactionController
	ReportCtl    *controllers.ReportController
	InventoryCtl *controllers.InventoryController
}

func SetupRoutes(app *fiber.App, d *Deps) {
	AuthRoutes(app, d)

	// Everything below requires a valid bearer token.
	protected := app.Group("/", middleware.JWTProtected(d.Auth))
	ProductRoutes(protected, d)
	CategoryRoutes(protected, d)
	CustomerRoutes(protected, d)
	EmployeeRoutes(protected, d)
	UserRoutes(protected, d)
	TransactionRoutes(protected, d)
	ReportRoutes(protected, d)
	InventoryRoutes(protected, d)
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Galang0304/kasir-pos-capstone/middleware"
)

func AuthRoutes(app *fiber.App, d *Deps) {
	auth := app.Group("/auth")
	auth.Post("/login", d.AuthCtl.Login)
	auth.Get("/me", middleware.JWTProtected(d.Auth), d.AuthCtl.Me)
}

package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Galang0304/kasir-pos-capstone/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Login godoc
//
//	@Summary	Login with username and password
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Router		/auth/login [post]
//
// POST /auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	token, user, err := ac.auth.Authenticate(c.Context(), body.Username, body.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// GET /auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	user, err := ac.auth.Me(c.Context(), actingUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

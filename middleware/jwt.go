package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Galang0304/kasir-pos-capstone/models"
	"github.com/Galang0304/kasir-pos-capstone/services"
)

// Locals keys set by JWTProtected and read by handlers.
const (
	LocalUserID   = "userID"
	LocalUserRole = "userRole"
	LocalUserName = "userName"
)

// JWTProtected reads the bearer token from the Authorization header,
// verifies it through the auth service and attaches the acting identity to
// the request. The identity is always server-derived, never taken from the
// request body.
func JWTProtected(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "missing or malformed bearer token",
			})
		}

		claims, err := auth.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "invalid or expired token",
			})
		}

		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalUserRole, claims.Role)
		c.Locals(LocalUserName, claims.Name)

		return c.Next()
	}
}

// RoleGuard allows only the listed roles past. Unknown roles are denied like
// any other mismatch.
func RoleGuard(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalUserRole).(models.Role)
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "forbidden",
		})
	}
}

// Package controllers holds the fiber handlers. Controllers are thin: they
// parse the request, call a service or repository, and map errors onto HTTP
// statuses in one place.
package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Galang0304/kasir-pos-capstone/apperr"
	"github.com/Galang0304/kasir-pos-capstone/middleware"
	"github.com/Galang0304/kasir-pos-capstone/models"
)

// respondError maps the error taxonomy onto HTTP statuses. Validation and
// auth errors carry caller-safe messages; everything else is reported as a
// generic server error.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case apperr.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case apperr.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, apperr.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
	case apperr.IsAuth(err):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, apperr.ErrTransactionFailed):
		// Transient: safe for the caller to retry from scratch.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error"})
	}
}

func actingUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.LocalUserID).(string)
	return id
}

func actingRole(c *fiber.Ctx) models.Role {
	role, _ := c.Locals(middleware.LocalUserRole).(models.Role)
	return role
}

// parseDateRange reads optional start/end query params (YYYY-MM-DD, local
// time, end inclusive as a date).
func parseDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	startStr := c.Query("start", "")
	endStr := c.Query("end", "")
	var start, end time.Time

	if startStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
		if err != nil {
			return start, end, apperr.Validationf("start must be YYYY-MM-DD")
		}
		start = parsed
	}
	if endStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
		if err != nil {
			return start, end, apperr.Validationf("end must be YYYY-MM-DD")
		}
		end = parsed.AddDate(0, 0, 1)
	}
	return start, end, nil
}

package middleware

import (
	"github.com/gofiber/fiber/v2"

	"campusmarket/models"
)

// AdminOnly dipasang setelah Authenticate untuk endpoint khusus admin
func AdminOnly(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil || user.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":  "error",
			"message": "Akses khusus admin",
		})
	}
	return c.Next()
}

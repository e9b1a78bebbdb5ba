package middleware

import "github.com/gofiber/fiber/v2"

// RequireAdmin ensures that only users whose token carries the admin role
// reach admin routes. Runs after RequireAuth, which verified the token.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied. Admins only."})
		}
		return c.Next()
	}
}

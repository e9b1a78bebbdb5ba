package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"appdrop-backend/internal/session"
)

// RequireAuth validates the bearer token, rejects revoked sessions and
// stores the user details in the request context for later handlers.
func RequireAuth(secret []byte, sessions *session.Context) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get("Authorization")
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token"})
		}

		tokenString = strings.TrimPrefix(tokenString, "Bearer ")
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token format"})
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
		}

		userID, userExists := claims["sub"].(string)
		role, roleExists := claims["role"].(string)
		tokenID, tokenExists := claims["jti"].(string)
		if !userExists || !roleExists || !tokenExists {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token payload"})
		}

		if sessions.Revoked(tokenID) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Session signed out"})
		}

		c.Locals("user_id", userID)
		c.Locals("role", role)
		c.Locals("token_id", tokenID)

		return c.Next()
	}
}

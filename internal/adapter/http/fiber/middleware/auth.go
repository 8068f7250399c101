package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-repo/vocalis/internal/ports"
)

// AuthRequired validates the session token and loads the owning user into
// request locals. The token arrives either in the session cookie or as an
// Authorization bearer header; the cookie wins when both are present.
func AuthRequired(service ports.AuthService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			authHeader := c.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				token = parts[1]
			}
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
		}

		user, err := service.ValidateToken(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("user_id", user.ID)
		c.Locals("user", user)
		c.Locals("user_name", user.Name)
		c.Locals("assistant_name", user.AssistantName)
		c.Locals("token", token)

		return c.Next()
	}
}

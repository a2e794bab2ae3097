// middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionAuthMiddleware is the auth gate: every resource behind it requires
// an authenticated session. API clients get a 401 before any store access;
// browser surfaces get bounced to the login page. The user id is attached to
// the ctx for handlers that care.
func SessionAuthMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session store unavailable"})
		}

		userID, _ := sess.Get("user_id").(string)
		if userID == "" {
			if strings.HasPrefix(c.Path(), "/api/") {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
			}
			return c.Redirect("/login", fiber.StatusFound)
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

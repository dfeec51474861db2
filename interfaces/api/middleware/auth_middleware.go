package middleware

import (
	"github.com/gofiber/fiber/v2"

	"deskhub/domain/services"
	"deskhub/pkg/utils"
)

// SessionCookieName carries the signed session token.
const SessionCookieName = "deskhub_session"

// Protected resolves the session cookie to a user and stores it in locals.
// Requests without a live session are rejected.
func Protected(authService services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookieName)
		if token == "" {
			return utils.UnauthorizedResponse(c, "")
		}

		user, err := authService.CurrentUser(c.UserContext(), token)
		if err != nil {
			return utils.UnauthorizedResponse(c, "")
		}

		c.Locals("user", user)

		return c.Next()
	}
}

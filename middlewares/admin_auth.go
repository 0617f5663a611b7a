package middlewares

import (
	"context"
	"time"

	"ristcon.api/configs/configslog"
	"ristcon.api/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
)

const LocalAdminEmail = "adminEmail"

// AdminAuth guards the admin API with HTTP basic auth checked against admin users.
func AdminAuth(auth services.IAuthService) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Realm: "RISTCON Admin",
		Authorizer: func(email, password string) bool {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			user, err := auth.AuthenticateAdmin(ctx, email, password)
			if err != nil {
				configslog.SLog.Debugf("Admin login rejected for %q", email)
				return false
			}
			return user != nil
		},
		Unauthorized: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="RISTCON Admin"`)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Authentication required",
			})
		},
		ContextUsername: LocalAdminEmail,
	})
}

// handlers/auth_routes.go
package handlers

import (
	"os"

	"wolf-scoring-system/services"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes mounts the login/logout/registration surface. These are
// the only routes that run without a session. Registration can be switched
// off in production with REGISTRATION_ENABLED=false.
func SetupAuthRoutes(app *fiber.App, auth *services.AuthService) {
	app.Get("/", auth.Index)

	app.Get("/login", auth.LoginPage)
	app.Post("/login", auth.Login)
	app.Get("/logout", auth.Logout)

	if os.Getenv("REGISTRATION_ENABLED") != "false" {
		app.Get("/register", auth.RegisterPage)
		app.Post("/register", auth.Register)
	}
}

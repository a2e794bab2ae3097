// handlers/admin_routes.go
package handlers

import (
	"wolf-scoring-system/middleware"
	"wolf-scoring-system/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupAdminRoutes mounts the generated console behind the session gate.
// The JSON routes are registered before the :table page route so /admin/api
// never shadows a table slug.
func SetupAdminRoutes(app *fiber.App, admin *services.AdminService, store *session.Store) {
	g := app.Group("/admin", middleware.SessionAuthMiddleware(store))

	g.Get("/", admin.Index)

	g.Get("/api/:table", admin.ListRows)
	g.Post("/api/:table", admin.CreateRow)
	g.Put("/api/:table/:id", admin.UpdateRow)
	g.Delete("/api/:table/:id", admin.DeleteRow)

	g.Get("/:table", admin.TablePage)
}

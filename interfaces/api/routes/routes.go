package routes

import (
	"github.com/gofiber/fiber/v2"

	"deskhub/domain/services"
	"deskhub/interfaces/api/handlers"
	"deskhub/interfaces/api/middleware"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, authService services.AuthService) {
	// Health and root routes stay outside the API group
	SetupHealthRoutes(app)

	api := app.Group("/api/v1")

	SetupAuthRoutes(api, h)

	// Everything below requires a live session
	protected := api.Group("", middleware.Protected(authService))

	SetupDashboardRoutes(protected, h)
	SetupTaskRoutes(protected, h)
	SetupContactRoutes(protected, h)
	SetupNoteRoutes(protected, h)
	SetupEventRoutes(protected, h)
	SetupBookmarkRoutes(protected, h)
	SetupMailRoutes(protected, h)
}

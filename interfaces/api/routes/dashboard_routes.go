package routes

import (
	"github.com/gofiber/fiber/v2"

	"deskhub/interfaces/api/handlers"
)

func SetupDashboardRoutes(api fiber.Router, h *handlers.Handlers) {
	api.Get("/dashboard", h.DashboardHandler.Overview)
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"deskhub/interfaces/api/handlers"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers) {
	auth := api.Group("/auth")

	auth.Post("/register", h.AuthHandler.Register)
	auth.Post("/login", h.AuthHandler.Login)
	auth.Post("/logout", h.AuthHandler.Logout)
	auth.Get("/me", h.AuthHandler.Me)
}

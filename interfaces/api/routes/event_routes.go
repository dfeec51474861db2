package routes

import (
	"github.com/gofiber/fiber/v2"

	"deskhub/interfaces/api/handlers"
)

func SetupEventRoutes(api fiber.Router, h *handlers.Handlers) {
	events := api.Group("/events")

	events.Post("/", h.EventHandler.CreateEvent)
	events.Get("/", h.EventHandler.ListEvents)
	events.Get("/:id", h.EventHandler.GetEvent)
	events.Put("/:id", h.EventHandler.UpdateEvent)
	events.Delete("/:id", h.EventHandler.DeleteEvent)

	api.Get("/calendar/feed.json", h.EventHandler.Feed)
}

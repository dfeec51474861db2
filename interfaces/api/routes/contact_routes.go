package routes

import (
	"github.com/gofiber/fiber/v2"

	"deskhub/interfaces/api/handlers"
)

func SetupContactRoutes(api fiber.Router, h *handlers.Handlers) {
	contacts := api.Group("/contacts")

	contacts.Post("/", h.ContactHandler.CreateContact)
	contacts.Get("/", h.ContactHandler.ListContacts)
	contacts.Get("/:id", h.ContactHandler.GetContact)
	contacts.Put("/:id", h.ContactHandler.UpdateContact)
	contacts.Delete("/:id", h.ContactHandler.DeleteContact)
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"deskhub/interfaces/api/handlers"
)

func SetupNoteRoutes(api fiber.Router, h *handlers.Handlers) {
	notes := api.Group("/notes")

	notes.Post("/", h.NoteHandler.CreateNote)
	notes.Get("/", h.NoteHandler.ListNotes)
	notes.Get("/:id", h.NoteHandler.GetNote)
	notes.Put("/:id", h.NoteHandler.UpdateNote)
	notes.Delete("/:id", h.NoteHandler.DeleteNote)
}

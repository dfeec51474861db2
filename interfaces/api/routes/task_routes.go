package routes

import (
	"github.com/gofiber/fiber/v2"

	"deskhub/interfaces/api/handlers"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers) {
	tasks := api.Group("/tasks")

	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/", h.TaskHandler.ListTasks)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Put("/:id", h.TaskHandler.UpdateTask)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)

	tasks.Post("/:id/notes", h.TaskHandler.AddNote)
	tasks.Delete("/:id/notes/:noteId", h.TaskHandler.DeleteNote)
	tasks.Post("/:id/links", h.TaskHandler.AddLink)
	tasks.Put("/:id/links/:linkId", h.TaskHandler.UpdateLink)
	tasks.Delete("/:id/links/:linkId", h.TaskHandler.DeleteLink)
	tasks.Post("/:id/subtasks", h.TaskHandler.AddSubtask)
	tasks.Patch("/:id/subtasks/:subtaskId/toggle", h.TaskHandler.ToggleSubtask)
	tasks.Delete("/:id/subtasks/:subtaskId", h.TaskHandler.DeleteSubtask)

	api.Get("/tags", h.TaskHandler.ListTags)
}

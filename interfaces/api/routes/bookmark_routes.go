package routes

import (
	"github.com/gofiber/fiber/v2"

	"deskhub/interfaces/api/handlers"
)

func SetupBookmarkRoutes(api fiber.Router, h *handlers.Handlers) {
	bookmarks := api.Group("/bookmarks")

	bookmarks.Post("/", h.BookmarkHandler.CreateBookmark)
	bookmarks.Get("/", h.BookmarkHandler.ListBookmarks)
	bookmarks.Get("/grouped", h.BookmarkHandler.GroupedBookmarks)
	bookmarks.Get("/:id", h.BookmarkHandler.GetBookmark)
	bookmarks.Put("/:id", h.BookmarkHandler.UpdateBookmark)
	bookmarks.Delete("/:id", h.BookmarkHandler.DeleteBookmark)
}

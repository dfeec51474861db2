package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"deskhub/domain/dto"
	"deskhub/domain/services"
	"deskhub/pkg/logger"
	"deskhub/pkg/utils"
)

type BookmarkHandler struct {
	bookmarkService services.BookmarkService
}

func NewBookmarkHandler(bookmarkService services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkService: bookmarkService,
	}
}

func (h *BookmarkHandler) CreateBookmark(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateBookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errors)
	}

	bookmark, err := h.bookmarkService.CreateBookmark(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Bookmark creation failed", "error", err)
		return respondError(c, err)
	}

	return utils.CreatedResponse(c, bookmark)
}

func (h *BookmarkHandler) GetBookmark(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid bookmark ID")
	}

	bookmark, err := h.bookmarkService.GetBookmark(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, bookmark)
}

// ListBookmarks backs the manage view: free-text q over title, URL, and
// notes plus an optional category filter, newest change first.
func (h *BookmarkHandler) ListBookmarks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	filter := dto.BookmarkFilter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	}

	bookmarks, err := h.bookmarkService.ListBookmarks(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list bookmarks", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, bookmarks)
}

func (h *BookmarkHandler) GroupedBookmarks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	groups, err := h.bookmarkService.GroupedBookmarks(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to group bookmarks", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, groups)
}

func (h *BookmarkHandler) UpdateBookmark(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid bookmark ID")
	}

	var req dto.UpdateBookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errors)
	}

	bookmark, err := h.bookmarkService.UpdateBookmark(ctx, id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, bookmark)
}

func (h *BookmarkHandler) DeleteBookmark(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid bookmark ID")
	}

	if err := h.bookmarkService.DeleteBookmark(ctx, id); err != nil {
		return respondError(c, err)
	}

	return utils.NoContentResponse(c)
}

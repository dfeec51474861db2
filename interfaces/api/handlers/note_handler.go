package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"deskhub/domain/dto"
	"deskhub/domain/services"
	"deskhub/pkg/logger"
	"deskhub/pkg/utils"
)

type NoteHandler struct {
	noteService services.NoteService
}

func NewNoteHandler(noteService services.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errors)
	}

	note, err := h.noteService.CreateNote(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Note creation failed", "error", err)
		return respondError(c, err)
	}

	return utils.CreatedResponse(c, note)
}

func (h *NoteHandler) GetNote(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid note ID")
	}

	note, err := h.noteService.GetNote(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, note)
}

func (h *NoteHandler) ListNotes(c *fiber.Ctx) error {
	ctx := c.UserContext()

	notes, err := h.noteService.ListNotes(ctx, c.Query("q"))
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list notes", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, notes)
}

func (h *NoteHandler) UpdateNote(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid note ID")
	}

	var req dto.UpdateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errors)
	}

	note, err := h.noteService.UpdateNote(ctx, id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, note)
}

func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid note ID")
	}

	if err := h.noteService.DeleteNote(ctx, id); err != nil {
		return respondError(c, err)
	}

	return utils.NoContentResponse(c)
}

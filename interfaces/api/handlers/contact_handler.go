package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"deskhub/domain/dto"
	"deskhub/domain/services"
	"deskhub/pkg/logger"
	"deskhub/pkg/utils"
)

type ContactHandler struct {
	contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

func (h *ContactHandler) CreateContact(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	contact, err := h.contactService.CreateContact(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Contact creation failed", "error", err)
		return respondError(c, err)
	}

	return utils.CreatedResponse(c, contact)
}

func (h *ContactHandler) GetContact(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid contact ID")
	}

	contact, err := h.contactService.GetContact(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, contact)
}

func (h *ContactHandler) ListContacts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	contacts, err := h.contactService.ListContacts(ctx, c.Query("q"))
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list contacts", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, contacts)
}

func (h *ContactHandler) UpdateContact(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid contact ID")
	}

	var req dto.UpdateContactRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errors)
	}

	contact, err := h.contactService.UpdateContact(ctx, id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, contact)
}

func (h *ContactHandler) DeleteContact(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid contact ID")
	}

	if err := h.contactService.DeleteContact(ctx, id); err != nil {
		return respondError(c, err)
	}

	return utils.NoContentResponse(c)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"deskhub/domain/dto"
	"deskhub/domain/services"
	"deskhub/pkg/logger"
	"deskhub/pkg/utils"
)

type EventHandler struct {
	eventService services.EventService
}

func NewEventHandler(eventService services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errors)
	}

	event, err := h.eventService.CreateEvent(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Event creation failed", "error", err)
		return respondError(c, err)
	}

	return utils.CreatedResponse(c, event)
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid event ID")
	}

	event, err := h.eventService.GetEvent(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, event)
}

func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	ctx := c.UserContext()

	events, err := h.eventService.ListEvents(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list events", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, events)
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid event ID")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errors)
	}

	event, err := h.eventService.UpdateEvent(ctx, id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, event)
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid event ID")
	}

	if err := h.eventService.DeleteEvent(ctx, id); err != nil {
		return respondError(c, err)
	}

	return utils.NoContentResponse(c)
}

// Feed serves the calendar widget. The payload is the raw item array, not
// the response envelope, because the widget consumes it directly.
func (h *EventHandler) Feed(c *fiber.Ctx) error {
	ctx := c.UserContext()

	items, err := h.eventService.Feed(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build calendar feed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return c.JSON(items)
}

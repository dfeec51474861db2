package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"deskhub/domain/dto"
	"deskhub/domain/services"
	"deskhub/pkg/logger"
	"deskhub/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	task, err := h.taskService.CreateTask(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Task creation failed", "error", err)
		return respondError(c, err)
	}

	return utils.CreatedResponse(c, task)
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.GetTask(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, task)
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	filter := dto.TaskFilter{
		Query:    c.Query("q"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
	}

	tasks, err := h.taskService.ListTasks(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, tasks)
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errors)
	}

	task, err := h.taskService.UpdateTask(ctx, id, &req)
	if err != nil {
		logger.WarnContext(ctx, "Task update failed", "task_id", id, "error", err)
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, task)
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(ctx, id); err != nil {
		return respondError(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *TaskHandler) AddNote(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.CreateTaskNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errors)
	}

	note, err := h.taskService.AddNote(ctx, taskID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return utils.CreatedResponse(c, note)
}

func (h *TaskHandler) DeleteNote(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}
	noteID, err := uuid.Parse(c.Params("noteId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid note ID")
	}

	if err := h.taskService.DeleteNote(ctx, taskID, noteID); err != nil {
		return respondError(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *TaskHandler) AddLink(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.CreateTaskLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errors)
	}

	link, err := h.taskService.AddLink(ctx, taskID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return utils.CreatedResponse(c, link)
}

func (h *TaskHandler) UpdateLink(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}
	linkID, err := uuid.Parse(c.Params("linkId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid link ID")
	}

	var req dto.UpdateTaskLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errors)
	}

	link, err := h.taskService.UpdateLink(ctx, taskID, linkID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, link)
}

func (h *TaskHandler) DeleteLink(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}
	linkID, err := uuid.Parse(c.Params("linkId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid link ID")
	}

	if err := h.taskService.DeleteLink(ctx, taskID, linkID); err != nil {
		return respondError(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *TaskHandler) AddSubtask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.CreateSubtaskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errors)
	}

	subtask, err := h.taskService.AddSubtask(ctx, taskID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return utils.CreatedResponse(c, subtask)
}

func (h *TaskHandler) ToggleSubtask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}
	subtaskID, err := uuid.Parse(c.Params("subtaskId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid subtask ID")
	}

	subtask, err := h.taskService.ToggleSubtask(ctx, taskID, subtaskID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, subtask)
}

func (h *TaskHandler) DeleteSubtask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}
	subtaskID, err := uuid.Parse(c.Params("subtaskId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid subtask ID")
	}

	if err := h.taskService.DeleteSubtask(ctx, taskID, subtaskID); err != nil {
		return respondError(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *TaskHandler) ListTags(c *fiber.Ctx) error {
	ctx := c.UserContext()

	tags, err := h.taskService.ListTags(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tags", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, tags)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"deskhub/domain/dto"
	"deskhub/domain/services"
	"deskhub/pkg/logger"
	"deskhub/pkg/utils"
)

type MailHandler struct {
	mailService services.MailService
}

func NewMailHandler(mailService services.MailService) *MailHandler {
	return &MailHandler{
		mailService: mailService,
	}
}

func (h *MailHandler) ConnectGmail(c *fiber.Ctx) error {
	ctx := c.UserContext()

	state := utils.GenerateRandomString(16)
	authURL, err := h.mailService.GmailAuthURL(ctx, state)
	if err != nil {
		logger.WarnContext(ctx, "Gmail connect failed", "error", err)
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, dto.ConnectResponse{AuthURL: authURL})
}

func (h *MailHandler) GmailCallback(c *fiber.Ctx) error {
	ctx := c.UserContext()

	code := c.Query("code")
	if code == "" {
		return utils.BadRequestResponse(c, "Missing authorization code")
	}

	account, err := h.mailService.HandleGmailCallback(ctx, code)
	if err != nil {
		logger.WarnContext(ctx, "Gmail callback failed", "error", err)
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, account)
}

func (h *MailHandler) DisconnectGmail(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid account ID")
	}

	if err := h.mailService.DisconnectGmail(ctx, id); err != nil {
		return respondError(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *MailHandler) ConnectOutlook(c *fiber.Ctx) error {
	ctx := c.UserContext()

	state := utils.GenerateRandomString(16)
	authURL, err := h.mailService.OutlookAuthURL(ctx, state)
	if err != nil {
		logger.WarnContext(ctx, "Outlook connect failed", "error", err)
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, dto.ConnectResponse{AuthURL: authURL})
}

func (h *MailHandler) OutlookCallback(c *fiber.Ctx) error {
	ctx := c.UserContext()

	code := c.Query("code")
	if code == "" {
		return utils.BadRequestResponse(c, "Missing authorization code")
	}

	account, err := h.mailService.HandleOutlookCallback(ctx, code)
	if err != nil {
		logger.WarnContext(ctx, "Outlook callback failed", "error", err)
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, account)
}

func (h *MailHandler) DisconnectOutlook(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid account ID")
	}

	if err := h.mailService.DisconnectOutlook(ctx, id); err != nil {
		return respondError(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *MailHandler) ListAccounts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	accounts, err := h.mailService.ListAccounts(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list mail accounts", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, accounts)
}

func (h *MailHandler) Inbox(c *fiber.Ctx) error {
	ctx := c.UserContext()

	inbox, err := h.mailService.Inbox(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load inbox", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponseWithWarnings(c, inbox.Messages, inbox.Warnings)
}

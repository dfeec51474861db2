package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"deskhub/domain/dto"
	"deskhub/domain/services"
	"deskhub/interfaces/api/middleware"
	"deskhub/pkg/logger"
	"deskhub/pkg/utils"
)

type AuthHandler struct {
	authService services.AuthService
	sessionTTL  time.Duration
}

// NewAuthHandler builds the auth handler. sessionTTL controls the session
// cookie lifetime and must match the server-side session expiry.
func NewAuthHandler(authService services.AuthService, sessionTTL time.Duration) *AuthHandler {
	if sessionTTL <= 0 {
		sessionTTL = 168 * time.Hour
	}
	return &AuthHandler{
		authService: authService,
		sessionTTL:  sessionTTL,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	user, err := h.authService.Register(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Registration failed", "email", req.Email, "error", err)
		return respondError(c, err)
	}

	return utils.CreatedResponse(c, user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	user, token, err := h.authService.Login(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Login failed", "email", req.Email, "error", err)
		return respondError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(h.sessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return utils.SuccessResponse(c, user)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ctx := c.UserContext()

	token := c.Cookies(middleware.SessionCookieName)
	if token != "" {
		if err := h.authService.Logout(ctx, token); err != nil {
			logger.WarnContext(ctx, "Logout failed", "error", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return utils.NoContentResponse(c)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	ctx := c.UserContext()

	token := c.Cookies(middleware.SessionCookieName)
	if token == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.authService.CurrentUser(ctx, token)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, user)
}

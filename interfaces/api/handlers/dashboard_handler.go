package handlers

import (
	"github.com/gofiber/fiber/v2"

	"deskhub/domain/services"
	"deskhub/pkg/logger"
	"deskhub/pkg/utils"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	ctx := c.UserContext()

	overview, err := h.dashboardService.Overview(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build dashboard", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, overview)
}

package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mealbox/storefront-backend/internal/clock"
	"github.com/mealbox/storefront-backend/internal/models"
	"github.com/mealbox/storefront-backend/internal/service"
)

type AdminHandler struct {
	adminService *service.AdminService
	clock        clock.Clock
}

func NewAdminHandler(adminService *service.AdminService, clk clock.Clock) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		clock:        clk,
	}
}

func (h *AdminHandler) GetDashboardStats(c *fiber.Ctx) error {
	return c.JSON(models.SuccessResponse(h.adminService.GetDashboardStats(c.UserContext()), "Stats retrieved successfully"))
}

func (h *AdminHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"time":   h.clock.Now().Format("2006-01-02T15:04:05Z07:00"),
	})
}

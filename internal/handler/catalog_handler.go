package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mealbox/storefront-backend/internal/catalog"
	"github.com/mealbox/storefront-backend/internal/clock"
	"github.com/mealbox/storefront-backend/internal/models"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
	clock   clock.Clock
}

func NewCatalogHandler(c *catalog.Catalog, clk clock.Clock) *CatalogHandler {
	return &CatalogHandler{
		catalog: c,
		clock:   clk,
	}
}

func (h *CatalogHandler) GetPlans(c *fiber.Ctx) error {
	return c.JSON(models.SuccessResponse(h.catalog.Plans(), "Plans retrieved successfully"))
}

func (h *CatalogHandler) GetPopularPlan(c *fiber.Ctx) error {
	plan, ok := h.catalog.GetPopularPlan()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("No popular plan"))
	}
	return c.JSON(models.SuccessResponse(plan, "Plan retrieved successfully"))
}

func (h *CatalogHandler) GetPlanByID(c *fiber.Ctx) error {
	plan, ok := h.catalog.GetPlanByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Plan not found"))
	}
	return c.JSON(models.SuccessResponse(plan, "Plan retrieved successfully"))
}

func (h *CatalogHandler) GetGiftCardOptions(c *fiber.Ctx) error {
	return c.JSON(models.SuccessResponse(h.catalog.GiftCards(), "Gift card options retrieved successfully"))
}

func (h *CatalogHandler) GetGiftMealPlans(c *fiber.Ctx) error {
	return c.JSON(models.SuccessResponse(h.catalog.GiftMealPlans(), "Gift meal plans retrieved successfully"))
}

func (h *CatalogHandler) GetGiftMealPlanByID(c *fiber.Ctx) error {
	opt, ok := h.catalog.GetGiftMealPlanByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Gift meal plan not found"))
	}
	return c.JSON(models.SuccessResponse(opt, "Gift meal plan retrieved successfully"))
}

func (h *CatalogHandler) GetMenu(c *fiber.Ctx) error {
	now := h.clock.Now()
	date := now
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, now.Location())
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("date must be formatted as YYYY-MM-DD"))
		}
		date = parsed
	}
	return c.JSON(models.SuccessResponse(h.catalog.MenuFor(date), "Menu retrieved successfully"))
}

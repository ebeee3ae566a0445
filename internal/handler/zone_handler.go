package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mealbox/storefront-backend/internal/clock"
	"github.com/mealbox/storefront-backend/internal/models"
	"github.com/mealbox/storefront-backend/internal/service"
)

const dateLayout = "2006-01-02"

type ZoneHandler struct {
	zoneService   *service.ZoneService
	windowService *service.WindowService
	clock         clock.Clock
	log           *zap.Logger
}

func NewZoneHandler(zoneService *service.ZoneService, windowService *service.WindowService, clk clock.Clock, log *zap.Logger) *ZoneHandler {
	return &ZoneHandler{
		zoneService:   zoneService,
		windowService: windowService,
		clock:         clk,
		log:           log,
	}
}

func (h *ZoneHandler) GetZones(c *fiber.Ctx) error {
	return c.JSON(models.SuccessResponse(h.zoneService.Zones(), "Zones retrieved successfully"))
}

func (h *ZoneHandler) GetSupportedZipCodes(c *fiber.Ctx) error {
	return c.JSON(models.SuccessResponse(h.zoneService.AllSupportedZips(), "Supported zip codes retrieved successfully"))
}

func (h *ZoneHandler) CheckZipCode(c *fiber.Ctx) error {
	zone, err := h.zoneService.CheckZone(c.UserContext(), c.Params("zip"))
	if err != nil {
		return respondError(c, h.log, err, "We do not deliver to this zip code yet")
	}
	return c.JSON(models.SuccessResponse(zone, "We deliver to your area"))
}

// GetDeliveryWindows reads ?date=YYYY-MM-DD in the store's timezone and
// defaults to today.
func (h *ZoneHandler) GetDeliveryWindows(c *fiber.Ctx) error {
	now := h.clock.Now()
	date := now
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, now.Location())
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("date must be formatted as YYYY-MM-DD"))
		}
		date = parsed
	}

	windows := h.windowService.AvailableWindows(date, now)
	return c.JSON(models.SuccessResponse(windows, "Delivery windows retrieved successfully"))
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mealbox/storefront-backend/internal/service"
)

type GiftCardHandler struct {
	giftCardService *service.GiftCardService
	log             *zap.Logger
}

func NewGiftCardHandler(giftCardService *service.GiftCardService, log *zap.Logger) *GiftCardHandler {
	return &GiftCardHandler{
		giftCardService: giftCardService,
		log:             log,
	}
}

// GetQRCode serves the redemption QR code of an issued gift card as PNG.
func (h *GiftCardHandler) GetQRCode(c *fiber.Ctx) error {
	png, err := h.giftCardService.QRCode(c.UserContext(), c.Params("code"), c.QueryInt("size", 0))
	if err != nil {
		return respondError(c, h.log, err, "Gift card not found")
	}

	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	c.Type("png")
	return c.Send(png)
}

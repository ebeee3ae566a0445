package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mealbox/storefront-backend/internal/models"
	"github.com/mealbox/storefront-backend/internal/service"
	"github.com/mealbox/storefront-backend/pkg/utils"
)

const HeaderIdempotencyKey = "Idempotency-Key"

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	validator       *utils.Validator
	log             *zap.Logger
}

func NewCheckoutHandler(checkoutService *service.CheckoutService, validator *utils.Validator, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		validator:       validator,
		log:             log,
	}
}

func (h *CheckoutHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	var req models.SubscriptionCheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.IdempotencyKey = c.Get(HeaderIdempotencyKey)

	session, err := h.checkoutService.CreateSubscriptionSession(c.UserContext(), req)
	if err != nil {
		return sessionError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"url":       session.URL,
		"sessionId": session.ID,
	})
}

func (h *CheckoutHandler) CreateDonationSession(c *fiber.Ctx) error {
	var req models.DonationCheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.IdempotencyKey = c.Get(HeaderIdempotencyKey)

	session, err := h.checkoutService.CreateDonationSession(c.UserContext(), req)
	if err != nil {
		return sessionError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"url": session.URL})
}

func (h *CheckoutHandler) CreateGiftSession(c *fiber.Ctx) error {
	var req models.GiftCheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}
	req.IdempotencyKey = c.Get(HeaderIdempotencyKey)

	session, err := h.checkoutService.CreateGiftSession(c.UserContext(), req)
	if err != nil {
		return sessionError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"url":       session.URL,
		"sessionId": session.ID,
	})
}

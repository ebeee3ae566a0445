package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"

	"github.com/mealbox/storefront-backend/internal/models"
	"github.com/mealbox/storefront-backend/internal/service"
)

type EventVerifier interface {
	ConstructEvent(payload []byte, signature string) (stripe.Event, error)
}

type PaymentHandler struct {
	paymentService *service.PaymentService
	verifier       EventVerifier
	log            *zap.Logger
}

func NewPaymentHandler(paymentService *service.PaymentService, verifier EventVerifier, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		verifier:       verifier,
		log:            log,
	}
}

func (h *PaymentHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	event, err := h.verifier.ConstructEvent(c.Body(), c.Get("Stripe-Signature"))
	if err != nil {
		h.log.Warn("webhook signature rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid webhook signature"))
	}

	if err := h.paymentService.HandleStripeWebhook(c.UserContext(), &event); err != nil {
		h.log.Error("webhook processing failed", zap.String("event_id", event.ID), zap.String("type", string(event.Type)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Webhook processing failed"))
	}

	return c.SendStatus(fiber.StatusOK)
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mealbox/storefront-backend/internal/models"
	"github.com/mealbox/storefront-backend/internal/service"
	"github.com/mealbox/storefront-backend/pkg/utils"
)

// respondError maps service errors onto the {success, error} envelope.
// Upstream and unexpected failures are logged and answered generically.
func respondError(c *fiber.Ctx, log *zap.Logger, err error, notFound string) error {
	var (
		verr *service.ValidationError
		uerr *service.UpstreamError
		cerr *service.ConfigurationError
	)

	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(verr.Message))
	case errors.Is(err, service.ErrUndeliverable):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(notFound))
	case errors.As(err, &uerr):
		log.Error("upstream failure", zap.String("service", uerr.Service), zap.Int("status", uerr.StatusCode), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse("Upstream service unavailable"))
	case errors.As(err, &cerr):
		log.Error("configuration error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Service is not configured"))
	}

	log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
}

// sessionError answers the checkout session contract: a bare {error} body,
// with the processor's own status and message passed through.
func sessionError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var (
		verr *service.ValidationError
		uerr *service.UpstreamError
		cerr *service.ConfigurationError
	)

	status, message := fiber.StatusInternalServerError, "Internal server error"
	switch {
	case errors.As(err, &verr):
		status, message = fiber.StatusBadRequest, verr.Error()
	case errors.Is(err, service.ErrNotFound):
		status, message = fiber.StatusNotFound, "Gift option not found"
	case errors.As(err, &uerr):
		status, message = uerr.StatusCode, uerr.Message
		if status < 400 || status > 599 {
			status = fiber.StatusBadGateway
		}
	case errors.As(err, &cerr):
		message = cerr.Error()
	default:
		log.Error("checkout session failed", zap.Error(err))
	}

	return c.Status(status).JSON(fiber.Map{"error": message})
}

func validationMessage(err error) string {
	return utils.Message(err)
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mealbox/storefront-backend/internal/middleware"
	"github.com/mealbox/storefront-backend/internal/models"
	"github.com/mealbox/storefront-backend/internal/service"
	"github.com/mealbox/storefront-backend/pkg/utils"
)

type AccountHandler struct {
	profileService  *service.ProfileService
	referralService *service.ReferralService
	addressService  *service.AddressService
	validator       *utils.Validator
	log             *zap.Logger
}

func NewAccountHandler(
	profileService *service.ProfileService,
	referralService *service.ReferralService,
	addressService *service.AddressService,
	validator *utils.Validator,
	log *zap.Logger,
) *AccountHandler {
	return &AccountHandler{
		profileService:  profileService,
		referralService: referralService,
		addressService:  addressService,
		validator:       validator,
		log:             log,
	}
}

func (h *AccountHandler) GetProfile(c *fiber.Ctx) error {
	summary, err := h.profileService.GetProfileSummary(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err, "Profile not found")
	}
	return c.JSON(models.SuccessResponse(summary, "Profile retrieved successfully"))
}

func (h *AccountHandler) GetReferralStats(c *fiber.Ctx) error {
	stats := h.referralService.GetReferralStats(c.UserContext(), middleware.UserID(c))
	return c.JSON(models.SuccessResponse(stats, "Referral stats retrieved successfully"))
}

func (h *AccountHandler) ListAddresses(c *fiber.Ctx) error {
	addresses, err := h.addressService.ListAddresses(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err, "Addresses not found")
	}
	return c.JSON(models.SuccessResponse(addresses, "Addresses retrieved successfully"))
}

func (h *AccountHandler) AddAddress(c *fiber.Ctx) error {
	var req models.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(validationMessage(err)))
	}

	address, err := h.addressService.AddAddress(c.UserContext(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.log, err, "Zone not found")
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(address, "Address added successfully"))
}

func (h *AccountHandler) DeleteAddress(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid address ID"))
	}

	if err := h.addressService.DeleteAddress(c.UserContext(), middleware.UserID(c), uint(id)); err != nil {
		return respondError(c, h.log, err, "Address not found")
	}
	return c.JSON(models.SuccessResponse(nil, "Address deleted successfully"))
}

func (h *AccountHandler) SetDefaultAddress(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid address ID"))
	}

	if err := h.addressService.SetDefault(c.UserContext(), middleware.UserID(c), uint(id)); err != nil {
		return respondError(c, h.log, err, "Address not found")
	}
	return c.JSON(models.SuccessResponse(nil, "Default address updated"))
}

package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mealbox/storefront-backend/internal/catalog"
	"github.com/mealbox/storefront-backend/internal/clock"
	"github.com/mealbox/storefront-backend/internal/config"
	"github.com/mealbox/storefront-backend/internal/handler"
	"github.com/mealbox/storefront-backend/internal/middleware"
	"github.com/mealbox/storefront-backend/internal/repository"
	"github.com/mealbox/storefront-backend/internal/router"
	"github.com/mealbox/storefront-backend/internal/service"
	"github.com/mealbox/storefront-backend/pkg/database"
	"github.com/mealbox/storefront-backend/pkg/email"
	"github.com/mealbox/storefront-backend/pkg/logger"
	"github.com/mealbox/storefront-backend/pkg/payment"
	"github.com/mealbox/storefront-backend/pkg/qrcode"
	"github.com/mealbox/storefront-backend/pkg/utils"
)

func main() {
	// .env is optional outside local development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.LoadConfig()

	zl, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zl.Sync()

	cat, err := catalog.Load()
	if err != nil {
		zl.Fatal("invalid catalog", zap.Error(err))
	}

	db, err := database.NewDatabase(cfg.DatabaseURL, cfg.IsProduction())
	if err != nil {
		zl.Fatal("failed to initialize database", zap.Error(err))
	}

	clk := clock.NewSystem(cfg.Location())

	// Repositories
	profileRepo := repository.NewProfileRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	giftCardRepo := repository.NewGiftCardRepository(db)
	donationRepo := repository.NewDonationRepository(db)

	// External services
	stripeService := payment.NewStripeService(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret)
	if !stripeService.Configured() {
		zl.Warn("STRIPE_SECRET_KEY is not set; checkout endpoints will answer 500")
	}

	emailService, err := email.NewEmailService(email.Config{
		APIKey:        cfg.Email.APIKey,
		FromAddress:   cfg.Email.FromAddress,
		FromName:      cfg.Email.FromName,
		FrontendURL:   cfg.FrontendURL,
		PublicBaseURL: cfg.PublicBaseURL,
	}, zl)
	if err != nil {
		zl.Fatal("failed to initialize email service", zap.Error(err))
	}

	// Services
	zoneService := service.NewZoneService(cat, cfg.ZoneCheckDelay)
	windowService := service.NewWindowService(cat)
	checkoutService := service.NewCheckoutService(stripeService, cat, service.Organization{
		Name:         cfg.Organization.Name,
		EIN:          cfg.Organization.EIN,
		DonationType: cfg.Organization.DonationType,
	}, zl)
	paymentService := service.NewPaymentService(service.FulfilmentStores{
		Subscriptions: subscriptionRepo,
		GiftCards:     giftCardRepo,
		Donations:     donationRepo,
		Profiles:      profileRepo,
		Referrals:     referralRepo,
	}, emailService, clk, utils.GenerateGiftCode, cfg.ReferralCredit, zl)
	giftCardService := service.NewGiftCardService(giftCardRepo, qrcode.NewQRService(), cfg.FrontendURL)
	profileService := service.NewProfileService(profileRepo, subscriptionRepo, addressRepo, giftCardRepo, zl)
	referralService := service.NewReferralService(referralRepo, profileRepo, zl)
	addressService := service.NewAddressService(addressRepo, zoneService)
	adminService := service.NewAdminService(profileRepo, subscriptionRepo, giftCardRepo, donationRepo, zl)

	validator := utils.NewValidator()

	app := router.New(router.Config{
		AllowedOrigins:  cfg.AllowedOrigins,
		StripeSecretKey: cfg.Stripe.SecretKey,
		SessionLimit:    20,
	}, router.Handlers{
		Checkout: handler.NewCheckoutHandler(checkoutService, validator, zl),
		Zone:     handler.NewZoneHandler(zoneService, windowService, clk, zl),
		Catalog:  handler.NewCatalogHandler(cat, clk),
		GiftCard: handler.NewGiftCardHandler(giftCardService, zl),
		Payment:  handler.NewPaymentHandler(paymentService, stripeService, zl),
		Account:  handler.NewAccountHandler(profileService, referralService, addressService, validator, zl),
		Admin:    handler.NewAdminHandler(adminService, clk),
	}, middleware.AuthMiddleware(cfg.JWTSecret, zl))

	zl.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mealbox/storefront-backend/internal/handler"
	"github.com/mealbox/storefront-backend/internal/middleware"
)

type Config struct {
	AllowedOrigins  string
	StripeSecretKey string
	// SessionLimit caps checkout session requests per IP per minute; 0 disables it.
	SessionLimit int
	// DisableRequestLog turns off the access log, mostly for tests.
	DisableRequestLog bool
}

type Handlers struct {
	Checkout *handler.CheckoutHandler
	Zone     *handler.ZoneHandler
	Catalog  *handler.CatalogHandler
	GiftCard *handler.GiftCardHandler
	Payment  *handler.PaymentHandler
	Account  *handler.AccountHandler
	Admin    *handler.AdminHandler
}

func New(cfg Config, h Handlers, authMiddleware fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "mealbox-storefront",
	})

	app.Use(recover.New())
	if !cfg.DisableRequestLog {
		app.Use(logger.New())
	}

	// Session endpoints carry their own permissive CORS and must be
	// registered before the global cors middleware answers preflights.
	session := func(final fiber.Handler) []fiber.Handler {
		chain := []fiber.Handler{middleware.PermissiveCORS(), middleware.RequireSecret(cfg.StripeSecretKey, "STRIPE_SECRET_KEY")}
		if cfg.SessionLimit > 0 {
			chain = append(chain, limiter.New(limiter.Config{
				Max:        cfg.SessionLimit,
				Expiration: 1 * time.Minute,
				KeyGenerator: func(c *fiber.Ctx) string {
					return c.IP()
				},
			}))
		}
		return append(chain, final)
	}
	app.Options("/api/create-checkout-session", middleware.PermissiveCORS())
	app.Options("/api/create-donation-session", middleware.PermissiveCORS())
	app.Post("/api/create-checkout-session", session(h.Checkout.CreateCheckoutSession)...)
	app.Post("/api/create-donation-session", session(h.Checkout.CreateDonationSession)...)

	app.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(cfg.AllowedOrigins),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, Idempotency-Key",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))

	api := app.Group("/api")

	api.Get("/health", h.Admin.Health)

	// Stripe webhook (public)
	api.Post("/payments/webhook", h.Payment.HandleStripeWebhook)

	// Zones and delivery windows
	api.Get("/zones", h.Zone.GetZones)
	api.Get("/zones/supported", h.Zone.GetSupportedZipCodes)
	api.Get("/zones/check/:zip", h.Zone.CheckZipCode)
	api.Get("/delivery-windows", h.Zone.GetDeliveryWindows)

	// Catalog
	api.Get("/plans", h.Catalog.GetPlans)
	api.Get("/plans/popular", h.Catalog.GetPopularPlan)
	api.Get("/plans/:id", h.Catalog.GetPlanByID)
	api.Get("/gift-meal-plans", h.Catalog.GetGiftMealPlans)
	api.Get("/gift-meal-plans/:id", h.Catalog.GetGiftMealPlanByID)
	api.Get("/menu", h.Catalog.GetMenu)

	// Gift cards
	giftCards := api.Group("/gift-cards")
	giftCards.Get("/options", h.Catalog.GetGiftCardOptions)
	giftCards.Post("/checkout", middleware.RequireSecret(cfg.StripeSecretKey, "STRIPE_SECRET_KEY"), h.Checkout.CreateGiftSession)
	giftCards.Get("/:code/qr", h.GiftCard.GetQRCode)

	// Protected routes
	protected := api.Group("", authMiddleware)
	protected.Get("/profile", h.Account.GetProfile)
	protected.Get("/referrals/stats", h.Account.GetReferralStats)

	addresses := protected.Group("/addresses")
	addresses.Get("/", h.Account.ListAddresses)
	addresses.Post("/", h.Account.AddAddress)
	addresses.Delete("/:id", h.Account.DeleteAddress)
	addresses.Put("/:id/default", h.Account.SetDefaultAddress)

	admin := protected.Group("/admin", middleware.RequireAdmin())
	admin.Get("/stats", h.Admin.GetDashboardStats)

	return app
}

func normalizeOrigins(origins string) string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ",")
}

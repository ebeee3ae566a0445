package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const sessionAllowHeaders = "authorization, x-client-info, apikey, content-type, idempotency-key"

// PermissiveCORS is used on the checkout session endpoints, which are called
// from any storefront origin. Preflight requests are answered with 200.
func PermissiveCORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		c.Set(fiber.HeaderAccessControlAllowHeaders, sessionAllowHeaders)
		c.Set(fiber.HeaderAccessControlAllowMethods, "POST, OPTIONS")

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusOK)
		}
		return c.Next()
	}
}

// RequireSecret answers 500 before the body is read when value is empty.
func RequireSecret(value, name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if value == "" {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": name + " is not configured",
			})
		}
		return c.Next()
	}
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

type EmailConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
}

type OrganizationConfig struct {
	Name         string
	EIN          string
	DonationType string
}

type Config struct {
	Port           string
	Environment    string
	DatabaseURL    string
	JWTSecret      string
	FrontendURL    string
	PublicBaseURL  string
	AllowedOrigins string
	Timezone       string
	ZoneCheckDelay time.Duration
	ReferralCredit float64
	Stripe         StripeConfig
	Email          EmailConfig
	Organization   OrganizationConfig
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.Port = getEnv("PORT", "8080")
	cfg.Environment = getEnv("APP_ENV", "development")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.FrontendURL = strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/")
	cfg.PublicBaseURL = strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/")
	cfg.AllowedOrigins = getEnv("ALLOWED_ORIGINS", "http://localhost:5173")
	cfg.Timezone = getEnv("APP_TIMEZONE", "America/Los_Angeles")
	cfg.ZoneCheckDelay = getDuration("ZONE_CHECK_DELAY", 0)
	cfg.ReferralCredit = getFloat("REFERRAL_CREDIT", 25)

	// Stripe
	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.WebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")

	// Resend
	cfg.Email.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = getEnv("EMAIL_FROM_ADDRESS", "gifts@mealbox.co")
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "Mealbox")

	cfg.Organization.Name = getEnv("ORG_NAME", "Mealbox Community Kitchen")
	cfg.Organization.EIN = os.Getenv("ORG_EIN")
	cfg.Organization.DonationType = getEnv("ORG_DONATION_TYPE", "meal_donation")

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Location falls back to UTC when Timezone is not a known zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return d
}

func getFloat(key string, fallback float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return f
}

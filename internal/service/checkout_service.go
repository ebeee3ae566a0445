package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/mealbox/storefront-backend/internal/catalog"
	"github.com/mealbox/storefront-backend/internal/models"
	"github.com/mealbox/storefront-backend/pkg/payment"
)

// PaymentProcessor creates hosted checkout sessions.
type PaymentProcessor interface {
	CreateCheckoutSession(ctx context.Context, req *models.SessionRequest) (*models.CheckoutSession, error)
}

// Organization identifies who receives donations; it is attached to every
// donation session as metadata.
type Organization struct {
	Name         string
	EIN          string
	DonationType string
}

const defaultCurrency = "usd"

type CheckoutService struct {
	processor PaymentProcessor
	catalog   *catalog.Catalog
	org       Organization
	log       *zap.Logger
}

func NewCheckoutService(processor PaymentProcessor, c *catalog.Catalog, org Organization, log *zap.Logger) *CheckoutService {
	return &CheckoutService{
		processor: processor,
		catalog:   c,
		org:       org,
		log:       log,
	}
}

func (s *CheckoutService) CreateSubscriptionSession(ctx context.Context, req models.SubscriptionCheckoutRequest) (*models.CheckoutSession, error) {
	planName := strings.TrimSpace(req.PlanName)
	if planName == "" {
		return nil, invalid("plan_name", "plan name is required")
	}
	unitAmount, err := amountInCents("price", req.Price)
	if err != nil {
		return nil, err
	}
	if err := requireRedirects(req.SuccessURL, req.CancelURL); err != nil {
		return nil, err
	}

	metadata := map[string]string{
		"kind":      "subscription",
		"plan_id":   req.PlanID,
		"plan_name": planName,
	}
	if req.ReferralCode != "" {
		metadata["referral_code"] = req.ReferralCode
	}

	description := ""
	if plan, ok := s.catalog.GetPlanByID(req.PlanID); ok {
		description = fmt.Sprintf("%d meals per week", plan.MealsPerWeek)
	}

	return s.submit(ctx, &models.SessionRequest{
		Mode:           models.SessionModeSubscription,
		ProductName:    planName,
		Description:    description,
		UnitAmount:     unitAmount,
		Currency:       defaultCurrency,
		Interval:       models.IntervalMonth,
		CustomerEmail:  req.CustomerEmail,
		SuccessURL:     req.SuccessURL,
		CancelURL:      req.CancelURL,
		Metadata:       metadata,
		IdempotencyKey: req.IdempotencyKey,
	})
}

func (s *CheckoutService) CreateDonationSession(ctx context.Context, req models.DonationCheckoutRequest) (*models.CheckoutSession, error) {
	unitAmount, err := amountInCents("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	currency := strings.ToLower(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = defaultCurrency
	}
	if currency != defaultCurrency {
		return nil, invalid("currency", "only usd donations are supported")
	}
	if err := requireRedirects(req.SuccessURL, req.CancelURL); err != nil {
		return nil, err
	}

	monthly := req.Frequency == models.FrequencyMonthly

	sr := &models.SessionRequest{
		Mode:           models.SessionModePayment,
		ProductName:    "One-time Donation",
		UnitAmount:     unitAmount,
		Currency:       currency,
		CustomerEmail:  req.Email,
		SuccessURL:     req.SuccessURL,
		CancelURL:      req.CancelURL,
		IdempotencyKey: req.IdempotencyKey,
		Metadata: map[string]string{
			"kind":              "donation",
			"frequency":         models.FrequencyOneTime,
			"donation_type":     s.org.DonationType,
			"tax_deductible":    "true",
			"organization_name": s.org.Name,
			"organization_ein":  s.org.EIN,
		},
	}
	if s.org.Name != "" {
		sr.Description = "Donation to " + s.org.Name
	}
	if monthly {
		sr.Mode = models.SessionModeSubscription
		sr.Interval = models.IntervalMonth
		sr.ProductName = "Monthly Donation"
		sr.Metadata["frequency"] = models.FrequencyMonthly
	}

	return s.submit(ctx, sr)
}

// CreateGiftSession starts a one-time payment for a catalog gift card or
// gift meal plan. Exactly one of the two ids must be set.
func (s *CheckoutService) CreateGiftSession(ctx context.Context, req models.GiftCheckoutRequest) (*models.CheckoutSession, error) {
	if (req.GiftCardID == "") == (req.GiftMealPlanID == "") {
		return nil, invalid("gift", "exactly one of gift_card_id or gift_meal_plan_id is required")
	}

	var (
		kind     string
		optionID string
		amount   float64
		name     string
		desc     string
	)
	if req.GiftCardID != "" {
		opt, ok := s.catalog.GetGiftCardByID(req.GiftCardID)
		if !ok {
			return nil, ErrNotFound
		}
		kind, optionID, amount, name = models.GiftKindCard, opt.ID, opt.Amount, opt.Label
	} else {
		opt, ok := s.catalog.GetGiftMealPlanByID(req.GiftMealPlanID)
		if !ok {
			return nil, ErrNotFound
		}
		kind, optionID, amount, name = models.GiftKindMealPlan, opt.ID, opt.Price, opt.Label
		desc = fmt.Sprintf("%d weeks of the %s plan", opt.Weeks, opt.PlanID)
	}

	unitAmount, err := amountInCents("amount", amount)
	if err != nil {
		return nil, err
	}

	return s.submit(ctx, &models.SessionRequest{
		Mode:          models.SessionModePayment,
		ProductName:   name,
		Description:   desc,
		UnitAmount:    unitAmount,
		Currency:      defaultCurrency,
		CustomerEmail: req.PurchaserEmail,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
		Metadata: map[string]string{
			"kind":            kind,
			"option_id":       optionID,
			"amount":          fmt.Sprintf("%.2f", amount),
			"purchaser_email": req.PurchaserEmail,
			"recipient_email": req.RecipientEmail,
			"recipient_name":  req.RecipientName,
			"gift_message":    req.Message,
		},
		IdempotencyKey: req.IdempotencyKey,
	})
}

func (s *CheckoutService) submit(ctx context.Context, sr *models.SessionRequest) (*models.CheckoutSession, error) {
	if c, ok := s.processor.(interface{ Configured() bool }); ok && !c.Configured() {
		return nil, &ConfigurationError{Setting: "STRIPE_SECRET_KEY"}
	}

	sess, err := s.processor.CreateCheckoutSession(ctx, sr)
	if err != nil {
		s.log.Error("checkout session creation failed",
			zap.String("mode", string(sr.Mode)),
			zap.String("kind", sr.Metadata["kind"]),
			zap.Error(err),
		)
		return nil, asUpstream(err)
	}

	s.log.Info("checkout session created",
		zap.String("session_id", sess.ID),
		zap.String("mode", string(sr.Mode)),
		zap.String("kind", sr.Metadata["kind"]),
	)
	return sess, nil
}

func asUpstream(err error) error {
	var perr *payment.Error
	if errors.As(err, &perr) {
		return &UpstreamError{
			Service:    "payment processor",
			StatusCode: perr.StatusCode,
			Message:    perr.Message,
			Err:        err,
		}
	}
	return &UpstreamError{
		Service: "payment processor",
		Message: err.Error(),
		Err:     err,
	}
}

func requireRedirects(successURL, cancelURL string) error {
	if strings.TrimSpace(successURL) == "" {
		return invalid("success_url", "success url is required")
	}
	if strings.TrimSpace(cancelURL) == "" {
		return invalid("cancel_url", "cancel url is required")
	}
	return nil
}

// maxUnitAmount is the largest unit amount Stripe accepts, in cents.
const maxUnitAmount = 99999999

// amountInCents converts a dollar amount to cents and requires the result to
// be in (0, maxUnitAmount].
func amountInCents(field string, amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, invalid(field, field+" must be a number")
	}
	cents := math.Round(amount * 100)
	if cents <= 0 {
		return 0, invalid(field, field+" must be greater than zero")
	}
	if cents > maxUnitAmount {
		return 0, invalid(field, fmt.Sprintf("%s must not exceed %.2f", field, float64(maxUnitAmount)/100))
	}
	return int64(cents), nil
}

package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mealbox/storefront-backend/internal/models"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
	"github.com/stripe/stripe-go/v74/webhook"
)

// Error is a processor failure with the HTTP status and message Stripe returned.
type Error struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("stripe: %s (status %d)", e.Message, e.StatusCode)
}

func (e *Error) Unwrap() error { return e.Err }

type StripeService struct {
	secretKey     string
	webhookSecret string
	sessions      session.Client
}

func NewStripeService(secretKey, webhookSecret string) *StripeService {
	return &StripeService{
		secretKey:     secretKey,
		webhookSecret: webhookSecret,
		sessions: session.Client{
			B:   stripe.GetBackend(stripe.APIBackend),
			Key: secretKey,
		},
	}
}

func (s *StripeService) Configured() bool {
	return s.secretKey != ""
}

func (s *StripeService) CreateCheckoutSession(ctx context.Context, req *models.SessionRequest) (*models.CheckoutSession, error) {
	params := BuildCheckoutSessionParams(req)
	params.Context = ctx

	sess, err := s.sessions.New(params)
	if err != nil {
		return nil, translateError(err)
	}

	return &models.CheckoutSession{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}

// ConstructEvent verifies the Stripe-Signature header against the webhook secret.
func (s *StripeService) ConstructEvent(payload []byte, signature string) (stripe.Event, error) {
	if s.webhookSecret == "" {
		return stripe.Event{}, errors.New("stripe webhook secret is not configured")
	}
	return webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
}

// BuildCheckoutSessionParams translates a SessionRequest into Stripe's
// checkout session parameters using inline price data.
func BuildCheckoutSessionParams(req *models.SessionRequest) *stripe.CheckoutSessionParams {
	productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String(req.ProductName),
	}
	if req.Description != "" {
		productData.Description = stripe.String(req.Description)
	}

	priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
		Currency:    stripe.String(req.Currency),
		UnitAmount:  stripe.Int64(req.UnitAmount),
		ProductData: productData,
	}
	if req.Interval != "" {
		priceData.Recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
			Interval: stripe.String(req.Interval),
		}
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		Mode: stripe.String(string(req.Mode)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: priceData,
				Quantity:  stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	if req.Mode == models.SessionModeSubscription && len(req.Metadata) > 0 {
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: copyMetadata(req.Metadata),
		}
	}

	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	return params
}

func copyMetadata(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func translateError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		status := stripeErr.HTTPStatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		return &Error{
			StatusCode: status,
			Message:    stripeErr.Msg,
			Err:        err,
		}
	}
	return &Error{
		StatusCode: http.StatusBadGateway,
		Message:    err.Error(),
		Err:        err,
	}
}

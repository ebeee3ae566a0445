package models

type SubscriptionCheckoutRequest struct {
	PlanName      string  `json:"plan_name"`
	Price         float64 `json:"price"`
	PlanID        string  `json:"plan_id"`
	SuccessURL    string  `json:"success_url"`
	CancelURL     string  `json:"cancel_url"`
	CustomerEmail string  `json:"customer_email,omitempty"`
	ReferralCode  string  `json:"referral_code,omitempty"`

	IdempotencyKey string `json:"-"`
}

const (
	FrequencyMonthly = "monthly"
	FrequencyOneTime = "one_time"
)

type DonationCheckoutRequest struct {
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency,omitempty"`
	Frequency  string  `json:"frequency"`
	SuccessURL string  `json:"success_url"`
	CancelURL  string  `json:"cancel_url"`
	Email      string  `json:"email,omitempty"`

	IdempotencyKey string `json:"-"`
}

type GiftCheckoutRequest struct {
	GiftCardID     string `json:"gift_card_id"`
	GiftMealPlanID string `json:"gift_meal_plan_id"`
	PurchaserEmail string `json:"purchaser_email" validate:"required,email"`
	RecipientEmail string `json:"recipient_email" validate:"required,email"`
	RecipientName  string `json:"recipient_name" validate:"max=120"`
	Message        string `json:"message" validate:"max=500"`
	SuccessURL     string `json:"success_url" validate:"required,url"`
	CancelURL      string `json:"cancel_url" validate:"required,url"`

	IdempotencyKey string `json:"-"`
}

type SessionMode string

const (
	SessionModePayment      SessionMode = "payment"
	SessionModeSubscription SessionMode = "subscription"
)

const IntervalMonth = "month"

// SessionRequest is the processor-neutral description of a checkout session.
type SessionRequest struct {
	Mode           SessionMode
	ProductName    string
	Description    string
	UnitAmount     int64 // cents
	Currency       string
	Interval       string // empty for one-time payments
	CustomerEmail  string
	SuccessURL     string
	CancelURL      string
	Metadata       map[string]string
	IdempotencyKey string
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

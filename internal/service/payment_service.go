package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mealbox/storefront-backend/internal/clock"
	"github.com/mealbox/storefront-backend/internal/models"
)

// GiftCardNotifier delivers an issued gift card to its recipient.
type GiftCardNotifier interface {
	SendGiftCardEmail(card *models.GiftCard) error
}

type FulfilmentStores struct {
	Subscriptions SubscriptionStore
	GiftCards     GiftCardStore
	Donations     DonationStore
	Profiles      ProfileStore
	Referrals     ReferralStore
}

// PaymentService turns completed checkout sessions into subscriptions,
// donations and gift cards.
type PaymentService struct {
	stores         FulfilmentStores
	notifier       GiftCardNotifier
	clock          clock.Clock
	newCode        func() (string, error)
	referralCredit float64
	log            *zap.Logger
}

func NewPaymentService(stores FulfilmentStores, notifier GiftCardNotifier, clk clock.Clock, newCode func() (string, error), referralCredit float64, log *zap.Logger) *PaymentService {
	return &PaymentService{
		stores:         stores,
		notifier:       notifier,
		clock:          clk,
		newCode:        newCode,
		referralCredit: referralCredit,
		log:            log,
	}
}

func (s *PaymentService) HandleStripeWebhook(ctx context.Context, event *stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return fmt.Errorf("decode checkout session: %w", err)
		}
		return s.fulfil(ctx, &session)

	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("decode subscription: %w", err)
		}
		found, err := s.stores.Subscriptions.UpdateStatusByStripeID(ctx, sub.ID, models.SubscriptionStatusCanceled)
		if err != nil {
			return err
		}
		if !found {
			s.log.Info("webhook: canceled subscription is unknown", zap.String("stripe_subscription_id", sub.ID))
		}
		return nil
	}

	s.log.Debug("webhook: ignoring event", zap.String("type", string(event.Type)))
	return nil
}

func (s *PaymentService) fulfil(ctx context.Context, session *stripe.CheckoutSession) error {
	kind := session.Metadata["kind"]
	log := s.log.With(zap.String("session_id", session.ID), zap.String("kind", kind))

	switch kind {
	case "subscription":
		return s.fulfilSubscription(ctx, session, log)
	case "donation":
		return s.fulfilDonation(ctx, session, log)
	case models.GiftKindCard, models.GiftKindMealPlan:
		return s.fulfilGift(ctx, session, log)
	default:
		log.Warn("webhook: checkout session without a known kind")
		return nil
	}
}

func (s *PaymentService) fulfilSubscription(ctx context.Context, session *stripe.CheckoutSession, log *zap.Logger) error {
	exists, err := s.stores.Subscriptions.ExistsBySessionID(ctx, session.ID)
	if err != nil {
		return err
	}
	if exists {
		log.Info("webhook: subscription already recorded")
		return nil
	}

	email := customerEmail(session)
	sub := &models.Subscription{
		Email:           email,
		PlanID:          session.Metadata["plan_id"],
		PlanName:        session.Metadata["plan_name"],
		MonthlyPrice:    fromCents(session.AmountTotal),
		StripeSessionID: session.ID,
		Status:          models.SubscriptionStatusActive,
	}
	if session.Subscription != nil {
		sub.StripeSubscriptionID = session.Subscription.ID
	}
	if email != "" {
		profile, err := s.stores.Profiles.GetByEmail(ctx, email)
		switch {
		case err == nil:
			userID := profile.UserID
			sub.UserID = &userID
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
	}

	if err := s.stores.Subscriptions.Create(ctx, sub); err != nil {
		return err
	}
	log.Info("webhook: subscription recorded", zap.String("plan_id", sub.PlanID))

	if code := session.Metadata["referral_code"]; code != "" && email != "" {
		s.completeReferral(ctx, code, email, log)
	}
	return nil
}

// completeReferral is best effort; the subscription is already recorded.
func (s *PaymentService) completeReferral(ctx context.Context, code, email string, log *zap.Logger) {
	referrer, err := s.stores.Profiles.GetByReferralCode(ctx, code)
	if err != nil {
		log.Warn("webhook: referral code lookup failed", zap.String("referral_code", code), zap.Error(err))
		return
	}
	ok, err := s.stores.Referrals.Complete(ctx, referrer.UserID, email, s.referralCredit, s.clock.Now())
	if err != nil {
		log.Warn("webhook: referral completion failed", zap.Error(err))
		return
	}
	if ok {
		log.Info("webhook: referral completed", zap.String("referrer_id", referrer.UserID))
	}
}

func (s *PaymentService) fulfilDonation(ctx context.Context, session *stripe.CheckoutSession, log *zap.Logger) error {
	exists, err := s.stores.Donations.ExistsBySessionID(ctx, session.ID)
	if err != nil {
		return err
	}
	if exists {
		log.Info("webhook: donation already recorded")
		return nil
	}

	currency := string(session.Currency)
	if currency == "" {
		currency = defaultCurrency
	}
	donation := &models.Donation{
		Email:           customerEmail(session),
		Amount:          fromCents(session.AmountTotal),
		Currency:        currency,
		Frequency:       session.Metadata["frequency"],
		StripeSessionID: session.ID,
	}
	if err := s.stores.Donations.Create(ctx, donation); err != nil {
		return err
	}
	log.Info("webhook: donation recorded", zap.Float64("amount", donation.Amount))
	return nil
}

func (s *PaymentService) fulfilGift(ctx context.Context, session *stripe.CheckoutSession, log *zap.Logger) error {
	exists, err := s.stores.GiftCards.ExistsBySessionID(ctx, session.ID)
	if err != nil {
		return err
	}
	if exists {
		log.Info("webhook: gift card already issued")
		return nil
	}

	code, err := s.newCode()
	if err != nil {
		return fmt.Errorf("generate gift card code: %w", err)
	}

	amount := fromCents(session.AmountTotal)
	if v, err := strconv.ParseFloat(session.Metadata["amount"], 64); err == nil && v > 0 {
		amount = v
	}

	purchaser := session.Metadata["purchaser_email"]
	if purchaser == "" {
		purchaser = customerEmail(session)
	}

	card := &models.GiftCard{
		ID:              uuid.New(),
		Code:            code,
		Kind:            session.Metadata["kind"],
		OptionID:        session.Metadata["option_id"],
		Amount:          amount,
		PurchaserEmail:  purchaser,
		RecipientEmail:  session.Metadata["recipient_email"],
		RecipientName:   session.Metadata["recipient_name"],
		Message:         session.Metadata["gift_message"],
		StripeSessionID: session.ID,
	}
	if err := s.stores.GiftCards.Create(ctx, card); err != nil {
		return err
	}
	log.Info("webhook: gift card issued", zap.String("gift_card_id", card.ID.String()))

	if card.RecipientEmail == "" {
		return nil
	}
	// The card exists now; a failed email must not make Stripe retry the event.
	if err := s.notifier.SendGiftCardEmail(card); err != nil {
		log.Error("webhook: gift card email failed", zap.String("gift_card_id", card.ID.String()), zap.Error(err))
	}
	return nil
}

func customerEmail(session *stripe.CheckoutSession) string {
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		return session.CustomerDetails.Email
	}
	return session.CustomerEmail
}

func fromCents(cents int64) float64 {
	return float64(cents) / 100
}

package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mealbox/storefront-backend/internal/models"
)

type ProfileService struct {
	profiles      ProfileStore
	subscriptions SubscriptionStore
	addresses     AddressStore
	giftCards     GiftCardStore
	log           *zap.Logger
}

func NewProfileService(profiles ProfileStore, subscriptions SubscriptionStore, addresses AddressStore, giftCards GiftCardStore, log *zap.Logger) *ProfileService {
	return &ProfileService{
		profiles:      profiles,
		subscriptions: subscriptions,
		addresses:     addresses,
		giftCards:     giftCards,
		log:           log,
	}
}

// GetProfileSummary needs the profile row; everything around it degrades to
// empty values when the backend cannot answer.
func (s *ProfileService) GetProfileSummary(ctx context.Context, userID string) (*models.ProfileSummary, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &UpstreamError{Service: "backend", Message: "profile lookup failed", Err: err}
	}

	summary := &models.ProfileSummary{Profile: *profile}

	sub, err := s.subscriptions.GetActiveByUser(ctx, userID)
	switch {
	case err == nil:
		summary.ActiveSubscription = sub
	case !errors.Is(err, gorm.ErrRecordNotFound):
		s.log.Warn("profile summary: subscription lookup failed", zap.String("user_id", userID), zap.Error(err))
	}

	if n, err := s.addresses.CountByUser(ctx, userID); err != nil {
		s.log.Warn("profile summary: address count failed", zap.String("user_id", userID), zap.Error(err))
	} else {
		summary.AddressCount = n
	}

	if n, err := s.giftCards.CountByPurchaser(ctx, profile.Email); err != nil {
		s.log.Warn("profile summary: gift card count failed", zap.String("user_id", userID), zap.Error(err))
	} else {
		summary.GiftCardsPurchased = n
	}

	return summary, nil
}

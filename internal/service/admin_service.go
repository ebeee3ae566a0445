package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mealbox/storefront-backend/internal/models"
)

type AdminService struct {
	profiles      ProfileStore
	subscriptions SubscriptionStore
	giftCards     GiftCardStore
	donations     DonationStore
	log           *zap.Logger
}

func NewAdminService(profiles ProfileStore, subscriptions SubscriptionStore, giftCards GiftCardStore, donations DonationStore, log *zap.Logger) *AdminService {
	return &AdminService{
		profiles:      profiles,
		subscriptions: subscriptions,
		giftCards:     giftCards,
		donations:     donations,
		log:           log,
	}
}

// GetDashboardStats reports each figure independently; a failing query
// leaves only its own figure at zero.
func (s *AdminService) GetDashboardStats(ctx context.Context) models.DashboardStats {
	var stats models.DashboardStats

	if n, err := s.profiles.Count(ctx); err != nil {
		s.log.Warn("dashboard: customer count failed", zap.Error(err))
	} else {
		stats.Customers = n
	}

	if n, err := s.subscriptions.CountActive(ctx); err != nil {
		s.log.Warn("dashboard: subscription count failed", zap.Error(err))
	} else {
		stats.ActiveSubscriptions = n
	}

	if n, err := s.giftCards.Count(ctx); err != nil {
		s.log.Warn("dashboard: gift card count failed", zap.Error(err))
	} else {
		stats.GiftCardsIssued = n
	}

	if total, err := s.donations.Total(ctx); err != nil {
		s.log.Warn("dashboard: donation total failed", zap.Error(err))
	} else {
		stats.DonationTotal = total
	}

	return stats
}

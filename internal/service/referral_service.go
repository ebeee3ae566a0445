package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mealbox/storefront-backend/internal/models"
)

type ReferralService struct {
	referrals ReferralStore
	profiles  ProfileStore
	log       *zap.Logger
}

func NewReferralService(referrals ReferralStore, profiles ProfileStore, log *zap.Logger) *ReferralService {
	return &ReferralService{
		referrals: referrals,
		profiles:  profiles,
		log:       log,
	}
}

// GetReferralStats never fails: any backend error is logged and the
// affected figures stay at zero.
func (s *ReferralService) GetReferralStats(ctx context.Context, userID string) models.ReferralStats {
	var stats models.ReferralStats

	if profile, err := s.profiles.GetByUserID(ctx, userID); err != nil {
		s.log.Warn("referral stats: profile lookup failed", zap.String("user_id", userID), zap.Error(err))
	} else {
		stats.ReferralCode = profile.ReferralCode
	}

	counts, err := s.referrals.CountByStatus(ctx, userID)
	if err != nil {
		s.log.Warn("referral stats: count failed", zap.String("user_id", userID), zap.Error(err))
	}
	for _, c := range counts {
		stats.Total += c.Count
		switch c.Status {
		case models.ReferralStatusCompleted:
			stats.Completed += c.Count
		case models.ReferralStatusPending:
			stats.Pending += c.Count
		}
	}

	credits, err := s.referrals.SumCredits(ctx, userID)
	if err != nil {
		s.log.Warn("referral stats: credit sum failed", zap.String("user_id", userID), zap.Error(err))
	} else {
		stats.CreditsEarned = credits
	}

	return stats
}

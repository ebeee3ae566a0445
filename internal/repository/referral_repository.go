package repository

import (
	"context"
	"time"

	"github.com/mealbox/storefront-backend/internal/models"
	"gorm.io/gorm"
)

type ReferralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

func (r *ReferralRepository) CountByStatus(ctx context.Context, referrerID string) ([]models.ReferralStatusCount, error) {
	var rows []models.ReferralStatusCount
	err := r.db.WithContext(ctx).
		Model(&models.Referral{}).
		Select("status, count(*) as count").
		Where("referrer_id = ?", referrerID).
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *ReferralRepository) SumCredits(ctx context.Context, referrerID string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Referral{}).
		Select("COALESCE(SUM(credit_amount), 0)").
		Where("referrer_id = ? AND status = ?", referrerID, models.ReferralStatusCompleted).
		Scan(&total).Error
	return total, err
}

// Complete marks the pending referral of email by referrerID as completed and
// credits it. It reports whether a pending referral existed.
func (r *ReferralRepository) Complete(ctx context.Context, referrerID, email string, credit float64, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Referral{}).
		Where("referrer_id = ? AND referred_email = ? AND status = ?", referrerID, email, models.ReferralStatusPending).
		Updates(map[string]interface{}{
			"status":        models.ReferralStatusCompleted,
			"credit_amount": credit,
			"completed_at":  at,
		})
	return result.RowsAffected > 0, result.Error
}

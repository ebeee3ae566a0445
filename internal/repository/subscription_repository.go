package repository

import (
	"context"

	"github.com/mealbox/storefront-backend/internal/models"
	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *SubscriptionRepository) ExistsBySessionID(ctx context.Context, sessionID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Subscription{}).Where("stripe_session_id = ?", sessionID).Count(&count).Error
	return count > 0, err
}

func (r *SubscriptionRepository) GetActiveByUser(ctx context.Context, userID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, models.SubscriptionStatusActive).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Subscription{}).Where("status = ?", models.SubscriptionStatusActive).Count(&count).Error
	return count, err
}

// UpdateStatusByStripeID reports false without touching any row when the id
// is empty, since rows from one-time sessions carry no subscription id.
func (r *SubscriptionRepository) UpdateStatusByStripeID(ctx context.Context, stripeSubscriptionID, status string) (bool, error) {
	if stripeSubscriptionID == "" {
		return false, nil
	}
	result := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("stripe_subscription_id = ?", stripeSubscriptionID).
		Update("status", status)
	return result.RowsAffected > 0, result.Error
}
